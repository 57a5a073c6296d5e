package cli

import (
	"errors"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// 選單代碼
const (
	OptionDeposit            = "d"
	OptionWithdraw           = "w"
	OptionStatement          = "s"
	OptionNewClient          = "nc"
	OptionNewAccount         = "na"
	OptionListAccounts       = "la"
	OptionListClients        = "lc"
	OptionListClientAccounts = "lac"
	OptionQuit               = "q"
)

// 成功訊息
const (
	MsgDepositSuccess  = "\nDeposit completed successfully!"
	MsgWithdrawSuccess = "\nWithdrawal completed successfully!"
	MsgClientCreated   = "\nClient created successfully!"
	MsgAccountCreated  = "\nAccount created successfully!"
)

// 失敗訊息
const (
	MsgInvalidAmount            = "\nOperation failed! The amount provided is invalid."
	MsgInsufficientBalance      = "\nOperation failed! You do not have sufficient balance."
	MsgWithdrawalLimitExceeded  = "\nOperation failed! The withdrawal amount exceeds the limit."
	MsgMaxWithdrawalsExceeded   = "\nOperation failed! Maximum number of withdrawals exceeded."
	MsgClientAlreadyExists      = "\nA client with this tax ID already exists!"
	MsgClientNotFoundForAccount = "\nClient not found, account creation flow ended!"
	MsgNoAccountsForClient      = "\nNo account linked to the client!"
	MsgAccountNotFound          = "\nNo account found with number %d!"
	MsgNoAccounts               = "\nNo accounts registered!"
	MsgNoClients                = "\nNo clients registered!"
	MsgInvalidOption            = "\nInvalid operation, please select the desired operation again."
	MsgNoMovements              = "No movements were made."
	MsgJournalFailed            = "\nOperation failed! The transaction could not be recorded."
)

// errorMessage 將領域錯誤轉成顯示給使用者的訊息
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return MsgInvalidAmount
	case errors.Is(err, domain.ErrInsufficientBalance):
		return MsgInsufficientBalance
	case errors.Is(err, domain.ErrWithdrawalLimitExceeded):
		return MsgWithdrawalLimitExceeded
	case errors.Is(err, domain.ErrMaxWithdrawalsExceeded):
		return MsgMaxWithdrawalsExceeded
	case errors.Is(err, domain.ErrClientAlreadyExists):
		return MsgClientAlreadyExists
	case errors.Is(err, domain.ErrClientNotFound):
		return MsgClientNotFoundForAccount
	case errors.Is(err, domain.ErrJournalWriteFailed):
		return MsgJournalFailed
	default:
		return "\nOperation failed! " + err.Error()
	}
}
