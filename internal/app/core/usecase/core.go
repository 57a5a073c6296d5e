package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// CoreUseCase 是核心業務邏輯層
type CoreUseCase struct {
	directory Directory
	logger    *zap.Logger
}

func NewCoreUseCase(directory Directory, logger *zap.Logger) *CoreUseCase {
	return &CoreUseCase{
		directory: directory,
		logger:    logger,
	}
}

// Deposit 存款到指定帳戶
func (c *CoreUseCase) Deposit(ctx context.Context, number int64, amount decimal.Decimal) (*domain.Transaction, error) {
	return c.post(ctx, domain.NewTransaction(domain.TransactionTypeDeposit, number, amount))
}

// Withdraw 從指定帳戶提款
func (c *CoreUseCase) Withdraw(ctx context.Context, number int64, amount decimal.Decimal) (*domain.Transaction, error) {
	return c.post(ctx, domain.NewTransaction(domain.TransactionTypeWithdraw, number, amount))
}

func (c *CoreUseCase) post(ctx context.Context, tran *domain.Transaction) (*domain.Transaction, error) {
	fields := []zap.Field{
		zap.String("transaction_id", tran.TransactionID.String()),
		zap.Stringer("type", tran.Type),
		zap.Int64("account", tran.Account),
		zap.Stringer("amount", tran.Amount),
	}
	if err := c.directory.PostTransaction(ctx, tran); err != nil {
		if errors.Is(err, domain.ErrJournalWriteFailed) {
			c.logger.Error("transaction not journaled", append(fields, zap.Error(err))...)
		} else {
			c.logger.Info("transaction rejected", append(fields, zap.Error(err))...)
		}
		return nil, err
	}
	c.logger.Info("transaction posted", fields...)
	return tran, nil
}

// Account 依帳號取得帳戶
func (c *CoreUseCase) Account(ctx context.Context, number int64) (*domain.Account, error) {
	if number == 0 {
		return nil, domain.ErrAccountNotFound
	}
	accounts, err := c.directory.FindAccounts(ctx, domain.AccountFilter{Number: number})
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, domain.ErrAccountNotFound
	}
	return accounts[0], nil
}

// Statement 取得單一帳戶的對帳單
func (c *CoreUseCase) Statement(ctx context.Context, number int64) (domain.Statement, error) {
	account, err := c.Account(ctx, number)
	if err != nil {
		return domain.Statement{}, err
	}
	return account.Statement(), nil
}

// Statements 依建立順序取得所有帳戶的對帳單
func (c *CoreUseCase) Statements(ctx context.Context) ([]domain.Statement, error) {
	accounts, err := c.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Statement, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.Statement())
	}
	return out, nil
}

// RegisterClient 註冊新客戶
func (c *CoreUseCase) RegisterClient(ctx context.Context, client *domain.Client) error {
	if err := c.directory.AddClient(ctx, client); err != nil {
		c.logger.Info("client registration rejected", zap.String("tax_id", client.TaxID), zap.Error(err))
		return err
	}
	c.logger.Info("client registered", zap.String("tax_id", client.TaxID))
	return nil
}

// FindClient 依稅號查詢客戶
func (c *CoreUseCase) FindClient(ctx context.Context, taxID string) (*domain.Client, error) {
	return c.directory.FindClient(ctx, taxID)
}

// OpenAccount 為客戶開立新帳戶
func (c *CoreUseCase) OpenAccount(ctx context.Context, taxID string) (*domain.Account, error) {
	account, err := c.directory.OpenAccount(ctx, taxID)
	if err != nil {
		c.logger.Info("account opening rejected", zap.String("tax_id", taxID), zap.Error(err))
		return nil, err
	}
	c.logger.Info("account opened", zap.String("tax_id", taxID), zap.Int64("account", account.Number))
	return account, nil
}

// Clients 列出所有客戶
func (c *CoreUseCase) Clients(ctx context.Context) ([]*domain.Client, error) {
	return c.directory.ListClients(ctx)
}

// Accounts 列出所有帳戶
func (c *CoreUseCase) Accounts(ctx context.Context) ([]*domain.Account, error) {
	return c.directory.FindAccounts(ctx, domain.AccountFilter{})
}

// AccountsOf 列出客戶名下的帳戶，空稅號不匹配任何帳戶
func (c *CoreUseCase) AccountsOf(ctx context.Context, taxID string) ([]*domain.Account, error) {
	if taxID == "" {
		return nil, nil
	}
	return c.directory.FindAccounts(ctx, domain.AccountFilter{TaxID: taxID})
}
