package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/pkg/logger"
)

// DefaultPath 預設設定檔位置
const DefaultPath = "config/config.yaml"

// Config 應用程式設定
type Config struct {
	Bank    BankConfig    `yaml:"bank"`
	Log     logger.Config `yaml:"log"`
	Journal JournalConfig `yaml:"journal"`
}

// BankConfig 分行與支票帳戶規則
// WithdrawalLimit 與 MaxWithdrawals 使用指標，以區分「沒寫」與「明確寫 0」
type BankConfig struct {
	Branch          string           `yaml:"branch"`
	WithdrawalLimit *decimal.Decimal `yaml:"withdrawal_limit"`
	MaxWithdrawals  *int             `yaml:"max_withdrawals"`
	CurrencySymbol  string           `yaml:"currency_symbol"`
}

// JournalConfig 交易日誌，Path 為空代表停用
type JournalConfig struct {
	Path string `yaml:"path"`
}

// Policy 回傳設定中的提款規則，未設定的欄位使用預設值
func (b BankConfig) Policy() domain.WithdrawalPolicy {
	policy := domain.DefaultWithdrawalPolicy()
	if b.WithdrawalLimit != nil {
		policy.Limit = *b.WithdrawalLimit
	}
	if b.MaxWithdrawals != nil {
		policy.MaxWithdrawals = *b.MaxWithdrawals
	}
	return policy
}

// Default 回傳內建預設值
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

// Load 讀取 YAML 設定檔；檔案不存在時使用預設值
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse 解析 YAML 內容，補全預設值並驗證
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults 補全預設配置 (如果 yaml 沒寫)
func (c *Config) applyDefaults() {
	if c.Bank.Branch == "" {
		c.Bank.Branch = domain.DefaultBranch
	}
	if c.Bank.WithdrawalLimit == nil {
		limit := decimal.NewFromInt(domain.DefaultWithdrawalLimit)
		c.Bank.WithdrawalLimit = &limit
	}
	if c.Bank.MaxWithdrawals == nil {
		maxWithdrawals := domain.DefaultMaxWithdrawals
		c.Bank.MaxWithdrawals = &maxWithdrawals
	}
	if c.Bank.CurrencySymbol == "" {
		c.Bank.CurrencySymbol = "R$"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stderr"
	}
}

// Validate 檢查設定值是否合理
func (c *Config) Validate() error {
	if limit := c.Bank.WithdrawalLimit; limit != nil && !limit.IsPositive() {
		return fmt.Errorf("bank.withdrawal_limit must be positive, got %s", limit)
	}
	if n := c.Bank.MaxWithdrawals; n != nil && *n <= 0 {
		return fmt.Errorf("bank.max_withdrawals must be positive, got %d", *n)
	}
	return nil
}
