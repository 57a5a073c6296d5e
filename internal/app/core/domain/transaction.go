package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdraw TransactionType = 2
)

// String 回傳對帳單上使用的顯示名稱
func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "Deposit"
	case TransactionTypeWithdraw:
		return "Withdrawal"
	default:
		return "Unknown"
	}
}

// Transaction 交易紀錄，寫入帳戶歷史後不可變更
type Transaction struct {
	// TransactionID: 外部追蹤號 (UUID)，用於冪等檢查與日誌
	TransactionID uuid.UUID `json:"transaction_id"`
	// Account: 目標帳戶號碼
	Account int64 `json:"account"`
	// Amount: 金額
	Amount decimal.Decimal `json:"amount"`
	// CreatedAt: 交易時間
	CreatedAt time.Time `json:"created_at"`
	// Type: 存款或提款
	Type TransactionType `json:"type"`
}

// NewTransaction 建立一筆新的交易請求 (尚未套用到帳戶)
func NewTransaction(txType TransactionType, account int64, amount decimal.Decimal) *Transaction {
	return &Transaction{
		TransactionID: uuid.New(),
		Account:       account,
		Amount:        amount,
		CreatedAt:     time.Now(),
		Type:          txType,
	}
}
