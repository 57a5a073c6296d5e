package domain

import "github.com/shopspring/decimal"

// Statement 帳戶對帳單: 依序的交易歷史加上目前餘額
type Statement struct {
	Account      int64
	Transactions []Transaction
	Balance      decimal.Decimal
}

// Empty 沒有任何交易
func (s Statement) Empty() bool {
	return len(s.Transactions) == 0
}

// Statement 產生帳戶目前的對帳單
func (a *Account) Statement() Statement {
	return Statement{
		Account:      a.Number,
		Transactions: a.History(),
		Balance:      a.Balance,
	}
}
