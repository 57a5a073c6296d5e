package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	p := cfg.Bank.Policy()
	if cfg.Bank.Branch != "0001" || p.MaxWithdrawals != 3 || !p.Limit.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected defaults: %+v", cfg.Bank)
	}
	if cfg.Bank.CurrencySymbol != "R$" || cfg.Log.Level != "warn" || cfg.Log.Output != "stderr" {
		t.Fatalf("unexpected defaults: %+v %+v", cfg.Bank, cfg.Log)
	}
	if cfg.Journal.Path != "" {
		t.Fatalf("journal should be disabled by default, got %q", cfg.Journal.Path)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
bank:
  branch: "0042"
  withdrawal_limit: 250.50
  max_withdrawals: 5
log:
  level: debug
journal:
  path: /tmp/bank-journal.log
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Bank.Branch != "0042" || *cfg.Bank.MaxWithdrawals != 5 {
		t.Fatalf("unexpected bank config: %+v", cfg.Bank)
	}
	if !cfg.Bank.WithdrawalLimit.Equal(decimal.RequireFromString("250.50")) {
		t.Fatalf("limit=%s want=250.50", cfg.Bank.WithdrawalLimit)
	}
	// 沒寫的欄位補預設值
	if cfg.Bank.CurrencySymbol != "R$" || cfg.Log.Output != "stderr" {
		t.Fatalf("defaults not applied: %+v %+v", cfg.Bank, cfg.Log)
	}
	if cfg.Log.Level != "debug" || cfg.Journal.Path != "/tmp/bank-journal.log" {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	p := cfg.Bank.Policy()
	if !p.Limit.Equal(*cfg.Bank.WithdrawalLimit) || p.MaxWithdrawals != 5 {
		t.Fatalf("unexpected policy: %+v", p)
	}
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":       "bank: [",
		"negative limit": "bank:\n  withdrawal_limit: -1\n",
		"negative count": "bank:\n  max_withdrawals: -2\n",
		"bad decimal":    "bank:\n  withdrawal_limit: abc\n",
		"zero limit":     "bank:\n  withdrawal_limit: 0\n",
		"zero count":     "bank:\n  max_withdrawals: 0\n",
	}
	for name, data := range cases {
		if _, err := Parse([]byte(data)); err == nil {
			t.Fatalf("%s: want error", name)
		}
	}
}

// TestParsePartialBank 只寫部分欄位時，其餘欄位仍使用預設值
func TestParsePartialBank(t *testing.T) {
	cfg, err := Parse([]byte("bank:\n  max_withdrawals: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	p := cfg.Bank.Policy()
	if p.MaxWithdrawals != 1 || !p.Limit.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected policy: %+v", p)
	}
}
