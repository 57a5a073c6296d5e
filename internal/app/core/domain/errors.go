package domain

import "errors"

var (
	// ErrInvalidAmount 金額必須為正數
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientBalance 餘額不足
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrWithdrawalLimitExceeded 單筆提款超過上限
	ErrWithdrawalLimitExceeded = errors.New("withdrawal exceeds limit")

	// ErrMaxWithdrawalsExceeded 提款次數已達上限
	ErrMaxWithdrawalsExceeded = errors.New("maximum number of withdrawals exceeded")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrClientNotFound 找不到客戶
	ErrClientNotFound = errors.New("client not found")

	// ErrClientAlreadyExists 客戶 (稅號) 已存在
	ErrClientAlreadyExists = errors.New("client already exists")

	// ErrAccountMismatch 交易不屬於此帳戶
	ErrAccountMismatch = errors.New("transaction does not belong to account")

	// ErrUnknownTransactionType 未知的交易類型
	ErrUnknownTransactionType = errors.New("unknown transaction type")

	// ErrJournalWriteFailed 寫入交易日誌失敗
	ErrJournalWriteFailed = errors.New("journal write failed")
)
