package domain

import "github.com/shopspring/decimal"

// DefaultBranch 本模擬只有一間分行
const DefaultBranch = "0001"

// Account 支票帳戶
//
// 結構:
//
//	Number: 帳戶號碼 (由 Directory 依序分配)
//	Branch: 分行代碼
//	Owner: 帳戶持有人，多個帳戶可指向同一客戶
//	Balance: 目前餘額，任何成功操作後皆不為負
//	Policy: 提款規則
type Account struct {
	Number  int64
	Branch  string
	Owner   *Client
	Balance decimal.Decimal
	Policy  WithdrawalPolicy

	history []Transaction
}

func NewAccount(number int64, branch string, owner *Client, policy WithdrawalPolicy) *Account {
	return &Account{
		Number:  number,
		Branch:  branch,
		Owner:   owner,
		Balance: decimal.Zero,
		Policy:  policy,
	}
}

// History 回傳交易歷史的拷貝，避免外部修改內部切片
func (a *Account) History() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// Snapshot 回傳帳戶目前狀態的拷貝，修改拷貝不影響原帳戶
func (a *Account) Snapshot() *Account {
	cp := *a
	cp.history = a.History()
	return &cp
}

// Withdrawals 回傳已完成的提款次數
func (a *Account) Withdrawals() int {
	n := 0
	for _, tran := range a.history {
		if tran.Type == TransactionTypeWithdraw {
			n++
		}
	}
	return n
}

// Check 檢查交易是否可以套用，不改變任何狀態
func (a *Account) Check(tran *Transaction) error {
	if tran.Account != a.Number {
		return ErrAccountMismatch
	}
	switch tran.Type {
	case TransactionTypeDeposit:
		return ValidateDeposit(tran.Amount)
	case TransactionTypeWithdraw:
		return a.Policy.Evaluate(tran.Amount, a.Balance, a.Withdrawals())
	default:
		return ErrUnknownTransactionType
	}
}

// Apply 檢查並套用交易: 更新餘額並追加到歷史。
// 失敗時帳戶保持不變。
func (a *Account) Apply(tran *Transaction) error {
	if err := a.Check(tran); err != nil {
		return err
	}
	switch tran.Type {
	case TransactionTypeDeposit:
		a.Balance = a.Balance.Add(tran.Amount)
	case TransactionTypeWithdraw:
		a.Balance = a.Balance.Sub(tran.Amount)
	}
	a.history = append(a.history, *tran)
	return nil
}

// Deposit 存款
func (a *Account) Deposit(amount decimal.Decimal) (*Transaction, error) {
	tran := NewTransaction(TransactionTypeDeposit, a.Number, amount)
	if err := a.Apply(tran); err != nil {
		return nil, err
	}
	return tran, nil
}

// Withdraw 提款
func (a *Account) Withdraw(amount decimal.Decimal) (*Transaction, error) {
	tran := NewTransaction(TransactionTypeWithdraw, a.Number, amount)
	if err := a.Apply(tran); err != nil {
		return nil, err
	}
	return tran, nil
}
