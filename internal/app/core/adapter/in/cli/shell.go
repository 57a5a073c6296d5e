package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// maxLineBytes 單行輸入上限，超過的行整行丟棄並視為空白輸入
const maxLineBytes = 64 * 1024

// Shell 是互動式選單 (Driving Adapter)，從 in 讀取指令並把結果寫到 out
type Shell struct {
	core   *usecase.CoreUseCase
	in     *bufio.Reader
	out    io.Writer
	symbol string
	logger *zap.Logger
}

// Option 定義 Shell 的配置選項函數
type Option func(*Shell)

// WithCurrencySymbol 設定金額前的貨幣符號
func WithCurrencySymbol(symbol string) Option {
	return func(s *Shell) {
		s.symbol = symbol
	}
}

func NewShell(core *usecase.CoreUseCase, in io.Reader, out io.Writer, logger *zap.Logger, opts ...Option) *Shell {
	s := &Shell{
		core:   core,
		in:     bufio.NewReaderSize(in, maxLineBytes),
		out:    out,
		symbol: "R$",
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run 執行選單迴圈，直到使用者選擇離開或輸入結束。
// 業務錯誤只會印出訊息；只有讀取輸入失敗才會回傳錯誤。
func (s *Shell) Run(ctx context.Context) error {
	for {
		option, err := s.menu()
		if err != nil {
			return s.stop(err)
		}
		s.logger.Debug("menu option selected", zap.String("option", option))

		switch option {
		case OptionDeposit:
			err = s.deposit(ctx)
		case OptionWithdraw:
			err = s.withdraw(ctx)
		case OptionStatement:
			s.statements(ctx)
		case OptionNewClient:
			err = s.newClient(ctx)
		case OptionNewAccount:
			err = s.newAccount(ctx)
		case OptionListAccounts:
			s.listAccounts(ctx)
		case OptionListClients:
			s.listClients(ctx)
		case OptionListClientAccounts:
			err = s.listClientAccounts(ctx)
		case OptionQuit:
			return nil
		default:
			s.println(MsgInvalidOption)
		}
		if err != nil {
			return s.stop(err)
		}
	}
}

// stop 輸入結束視為離開
func (s *Shell) stop(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Debug("input closed")
		return nil
	}
	return fmt.Errorf("failed to read input: %w", err)
}

func (s *Shell) menu() (string, error) {
	s.println()
	s.println(title("MENU"))
	s.println(menuOption(OptionDeposit, "Deposit"))
	s.println(menuOption(OptionWithdraw, "Withdraw"))
	s.println(menuOption(OptionStatement, "Statement"))
	s.println(menuOption(OptionNewClient, "New client"))
	s.println(menuOption(OptionNewAccount, "New account"))
	s.println(menuOption(OptionListAccounts, "List accounts"))
	s.println(menuOption(OptionListClients, "List clients"))
	s.println(menuOption(OptionListClientAccounts, "List accounts by client"))
	s.println(menuOption(OptionQuit, "Quit"))
	return s.ask("Select an option: ")
}

// ask 印出提示並讀取一行輸入
func (s *Shell) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		return "", s.discardLine()
	}
	if errors.Is(err, io.EOF) && len(line) > 0 {
		// 最後一行沒有換行符號
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(line)), nil
}

// discardLine 丟棄過長輸入行的剩餘內容
func (s *Shell) discardLine() error {
	for {
		_, err := s.in.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		s.logger.Warn("input line too long, ignored", zap.Int("max_bytes", maxLineBytes))
		return nil
	}
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

// askAccount 讀取帳號並查詢帳戶，找不到時印出訊息並回傳 nil
func (s *Shell) askAccount(ctx context.Context) (*domain.Account, error) {
	raw, err := s.ask("Enter the account number: ")
	if err != nil {
		return nil, err
	}
	number := parseAccountNumber(raw)
	account, err := s.core.Account(ctx, number)
	if err != nil {
		s.println(fmt.Sprintf(MsgAccountNotFound, number))
		return nil, nil
	}
	return account, nil
}

func (s *Shell) deposit(ctx context.Context) error {
	account, err := s.askAccount(ctx)
	if err != nil || account == nil {
		return err
	}
	raw, err := s.ask("Enter the deposit amount: ")
	if err != nil {
		return err
	}
	if _, err := s.core.Deposit(ctx, account.Number, parseAmount(raw)); err != nil {
		s.println(errorMessage(err))
		return nil
	}
	s.println(MsgDepositSuccess)
	return nil
}

func (s *Shell) withdraw(ctx context.Context) error {
	account, err := s.askAccount(ctx)
	if err != nil || account == nil {
		return err
	}
	raw, err := s.ask("Enter the withdrawal amount: ")
	if err != nil {
		return err
	}
	if _, err := s.core.Withdraw(ctx, account.Number, parseAmount(raw)); err != nil {
		s.println(errorMessage(err))
		return nil
	}
	s.println(MsgWithdrawSuccess)
	return nil
}

// statements 印出所有帳戶的對帳單
func (s *Shell) statements(ctx context.Context) {
	statements, err := s.core.Statements(ctx)
	if err != nil {
		s.println(errorMessage(err))
		return
	}
	if len(statements) == 0 {
		s.println(MsgNoAccounts)
		return
	}
	for _, st := range statements {
		writeStatement(s.out, s.symbol, st)
	}
}

func (s *Shell) newClient(ctx context.Context) error {
	taxID, err := s.ask("Enter the tax ID (numbers only): ")
	if err != nil {
		return err
	}
	// 先檢查重複，避免使用者輸入完所有欄位才被拒絕
	if _, err := s.core.FindClient(ctx, taxID); err == nil {
		s.println(MsgClientAlreadyExists)
		return nil
	}

	name, err := s.ask("Enter the full name: ")
	if err != nil {
		return err
	}
	birthDate, err := s.ask("Enter the birth date (dd-mm-yyyy): ")
	if err != nil {
		return err
	}
	address, err := s.ask("Enter the address (street, number - district - city/state): ")
	if err != nil {
		return err
	}

	if err := s.core.RegisterClient(ctx, domain.NewClient(taxID, name, birthDate, address)); err != nil {
		s.println(errorMessage(err))
		return nil
	}
	s.println(MsgClientCreated)
	return nil
}

func (s *Shell) newAccount(ctx context.Context) error {
	taxID, err := s.ask("Enter the client's tax ID: ")
	if err != nil {
		return err
	}
	if _, err := s.core.OpenAccount(ctx, taxID); err != nil {
		s.println(errorMessage(err))
		return nil
	}
	s.println(MsgAccountCreated)
	return nil
}

func (s *Shell) listAccounts(ctx context.Context) {
	accounts, err := s.core.Accounts(ctx)
	if err != nil {
		s.println(errorMessage(err))
		return
	}
	if len(accounts) == 0 {
		s.println(MsgNoAccounts)
		return
	}
	for _, a := range accounts {
		s.println(separator())
		s.println()
		s.println(accountDetails(a))
		s.println(holderDetails(a))
	}
}

func (s *Shell) listClients(ctx context.Context) {
	clients, err := s.core.Clients(ctx)
	if err != nil {
		s.println(errorMessage(err))
		return
	}
	if len(clients) == 0 {
		s.println(MsgNoClients)
		return
	}
	for _, c := range clients {
		s.println(separator())
		s.println("Holder: " + c.Name)
		s.println("Tax ID: " + c.TaxID)
		s.println("Birth date: " + c.BirthDate)
		s.println("Address: " + c.Address)
		s.writeClientAccounts(ctx, c.TaxID)
	}
}

func (s *Shell) listClientAccounts(ctx context.Context) error {
	taxID, err := s.ask("Enter the client's tax ID: ")
	if err != nil {
		return err
	}
	s.writeClientAccounts(ctx, taxID)
	return nil
}

func (s *Shell) writeClientAccounts(ctx context.Context, taxID string) {
	accounts, err := s.core.AccountsOf(ctx, taxID)
	if err != nil {
		s.println(errorMessage(err))
		return
	}
	if len(accounts) == 0 {
		s.println(MsgNoAccountsForClient)
		return
	}
	s.println("\nAccounts:")
	for _, a := range accounts {
		s.println()
		s.println(accountDetails(a))
		s.println()
	}
}

// accountDetails 分行與帳號
func accountDetails(a *domain.Account) string {
	return fmt.Sprintf("Branch: %s\nAccount: %d", a.Branch, a.Number)
}

func holderDetails(a *domain.Account) string {
	if a.Owner == nil {
		return "Holder: -"
	}
	return "Holder: " + a.Owner.Name
}
