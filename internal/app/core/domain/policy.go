package domain

import "github.com/shopspring/decimal"

const (
	// DefaultWithdrawalLimit 單筆提款上限預設值
	DefaultWithdrawalLimit = 500
	// DefaultMaxWithdrawals 提款次數上限預設值
	DefaultMaxWithdrawals = 3
)

// WithdrawalPolicy 支票帳戶的提款規則
type WithdrawalPolicy struct {
	// Limit: 單筆提款上限
	Limit decimal.Decimal
	// MaxWithdrawals: 可提款次數
	MaxWithdrawals int
}

// DefaultWithdrawalPolicy 回傳預設規則 (單筆 500，最多 3 次)
func DefaultWithdrawalPolicy() WithdrawalPolicy {
	return WithdrawalPolicy{
		Limit:          decimal.NewFromInt(DefaultWithdrawalLimit),
		MaxWithdrawals: DefaultMaxWithdrawals,
	}
}

// Evaluate 依固定優先順序檢查一筆提款，只回傳第一個違反的規則:
// 餘額 -> 單筆上限 -> 次數上限 -> 金額必須為正
//
// 參數:
//
//	amount: 提款金額
//	balance: 目前餘額
//	withdrawals: 已完成的提款次數
func (p WithdrawalPolicy) Evaluate(amount, balance decimal.Decimal, withdrawals int) error {
	switch {
	case amount.GreaterThan(balance):
		return ErrInsufficientBalance
	case amount.GreaterThan(p.Limit):
		return ErrWithdrawalLimitExceeded
	case withdrawals >= p.MaxWithdrawals:
		return ErrMaxWithdrawalsExceeded
	case !amount.IsPositive():
		return ErrInvalidAmount
	}
	return nil
}

// ValidateDeposit 存款只要求金額為正，沒有上限
func ValidateDeposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
