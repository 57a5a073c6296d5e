package usecase

import (
	"context"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// Directory 是客戶與帳戶的存放介面，也是交易入帳的唯一入口
type Directory interface {
	// AddClient 新增客戶，稅號重複時回傳 domain.ErrClientAlreadyExists
	AddClient(ctx context.Context, client *domain.Client) error
	// FindClient 依稅號查詢客戶
	FindClient(ctx context.Context, taxID string) (*domain.Client, error)
	// ListClients 依建立順序回傳所有客戶
	ListClients(ctx context.Context) ([]*domain.Client, error)
	// OpenAccount 為既有客戶開立帳戶，客戶不存在時回傳 domain.ErrClientNotFound
	OpenAccount(ctx context.Context, taxID string) (*domain.Account, error)
	// FindAccounts 依條件篩選帳戶，結果可能為空
	FindAccounts(ctx context.Context, filter domain.AccountFilter) ([]*domain.Account, error)
	// 不分 Deposit/Withdraw，直接看 tran.Type 決定
	PostTransaction(ctx context.Context, tran *domain.Transaction) error
}
