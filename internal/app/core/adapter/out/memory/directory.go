package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// Journal 交易寫入前的日誌 (Write-Ahead)
type Journal interface {
	Write(v any) error
}

// Directory 是一個使用 Mutex 保護的記憶體目錄
//
// 結構:
//
//	clients / accounts: 依建立順序保存，列表輸出時維持順序
//	clientIndex / accountIndex: 依識別碼索引
//	nextNumber: 下一個帳戶號碼
//	processedTransactions: 已處理過的交易
//	journal: 交易日誌 (可為 nil)
type Directory struct {
	mu sync.RWMutex

	clients      []*domain.Client
	clientIndex  map[string]*domain.Client
	accounts     []*domain.Account
	accountIndex map[int64]*domain.Account
	nextNumber   int64

	branch string
	policy domain.WithdrawalPolicy

	processedTransactions map[uuid.UUID]struct{}
	journal               Journal
}

// Option 定義 Directory 的配置選項函數
type Option func(*Directory)

// WithBranch 設定新帳戶的分行代碼
func WithBranch(branch string) Option {
	return func(d *Directory) {
		d.branch = branch
	}
}

// WithPolicy 設定新帳戶的提款規則
func WithPolicy(policy domain.WithdrawalPolicy) Option {
	return func(d *Directory) {
		d.policy = policy
	}
}

// WithJournal 設定交易日誌
func WithJournal(journal Journal) Option {
	return func(d *Directory) {
		d.journal = journal
	}
}

// NewDirectory 建立一個空的 Directory
//
// 參數:
//
//	opts: 可選的配置 (分行、提款規則、日誌)
//
// 回傳:
//
//	*Directory: Directory 實例
func NewDirectory(opts ...Option) *Directory {
	d := &Directory{
		clientIndex:           make(map[string]*domain.Client),
		accountIndex:          make(map[int64]*domain.Account),
		nextNumber:            1,
		branch:                domain.DefaultBranch,
		policy:                domain.DefaultWithdrawalPolicy(),
		processedTransactions: make(map[uuid.UUID]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AddClient 新增客戶，稅號重複時目錄保持不變
func (d *Directory) AddClient(ctx context.Context, client *domain.Client) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.clientIndex[client.TaxID]; ok {
		return domain.ErrClientAlreadyExists
	}
	d.clients = append(d.clients, client)
	d.clientIndex[client.TaxID] = client
	return nil
}

// FindClient 依稅號查詢客戶
func (d *Directory) FindClient(ctx context.Context, taxID string) (*domain.Client, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	client, ok := d.clientIndex[taxID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}

// ListClients 依建立順序回傳所有客戶
func (d *Directory) ListClients(ctx context.Context) ([]*domain.Client, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*domain.Client, len(d.clients))
	copy(out, d.clients)
	return out, nil
}

// OpenAccount 為既有客戶開立帳戶
// 只有成功時才會消耗帳戶號碼；回傳的是帳戶快照
func (d *Directory) OpenAccount(ctx context.Context, taxID string) (*domain.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	client, ok := d.clientIndex[taxID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	account := domain.NewAccount(d.nextNumber, d.branch, client, d.policy)
	d.nextNumber++
	d.accounts = append(d.accounts, account)
	d.accountIndex[account.Number] = account
	return account.Snapshot(), nil
}

// FindAccounts 依條件篩選帳戶
//
// 參數:
//
//	ctx: 上下文
//	filter: 篩選條件，只指定帳號時直接走索引
//
// 回傳:
//
//	[]*domain.Account: 符合條件的帳戶快照 (依建立順序，可能為空)
//	帳戶只能透過 PostTransaction 變更
//	error: 查詢錯誤
func (d *Directory) FindAccounts(ctx context.Context, filter domain.AccountFilter) ([]*domain.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if filter.Number != 0 {
		account, ok := d.accountIndex[filter.Number]
		if !ok || !filter.Match(account) {
			return nil, nil
		}
		return []*domain.Account{account.Snapshot()}, nil
	}

	out := make([]*domain.Account, 0, len(d.accounts))
	for _, account := range d.accounts {
		if filter.Match(account) {
			out = append(out, account.Snapshot())
		}
	}
	return out, nil
}

// PostTransaction 處理交易請求 (Mutex Lock)
//
// 參數:
//
//	ctx: 上下文
//	tran: 交易請求物件
//
// 回傳:
//
//	error: 處理錯誤 (帳戶不存在、違反規則、日誌寫入失敗)
func (d *Directory) PostTransaction(ctx context.Context, tran *domain.Transaction) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.postTransactionInternal(tran)
}

// postTransactionInternal 執行交易核心邏輯 (呼叫端需持有鎖)
func (d *Directory) postTransactionInternal(tran *domain.Transaction) error {
	if _, ok := d.processedTransactions[tran.TransactionID]; ok {
		return nil
	}

	account, ok := d.accountIndex[tran.Account]
	if !ok {
		return domain.ErrAccountNotFound
	}

	// 1. 檢查規則，被拒絕的交易不寫入日誌
	if err := account.Check(tran); err != nil {
		return err
	}

	// 2. 寫入日誌 (Critical Path)
	if d.journal != nil {
		if err := d.journal.Write(tran); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrJournalWriteFailed, err)
		}
	}

	// 3. 更新帳戶
	if err := account.Apply(tran); err != nil {
		return err
	}
	d.processedTransactions[tran.TransactionID] = struct{}{}
	return nil
}

var _ usecase.Directory = (*Directory)(nil)
