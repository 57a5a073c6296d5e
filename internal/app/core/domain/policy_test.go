package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// TestEvaluatePriority 多個規則同時違反時，只回傳優先順序最高者
func TestEvaluatePriority(t *testing.T) {
	p := DefaultWithdrawalPolicy()
	cases := []struct {
		name        string
		amount      decimal.Decimal
		balance     decimal.Decimal
		withdrawals int
		want        error
	}{
		{"ok", dec(100), dec(1000), 0, nil},
		{"at limit", dec(500), dec(500), 2, nil},
		{"insufficient beats limit and count", dec(600), dec(100), 3, ErrInsufficientBalance},
		{"limit beats count", dec(600), dec(1000), 3, ErrWithdrawalLimitExceeded},
		{"count beats invalid", dec(-1), dec(1000), 3, ErrMaxWithdrawalsExceeded},
		{"zero", decimal.Zero, dec(1000), 0, ErrInvalidAmount},
		{"negative", dec(-5), decimal.Zero, 0, ErrInvalidAmount},
		{"zero balance", dec(1), decimal.Zero, 0, ErrInsufficientBalance},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := p.Evaluate(c.amount, c.balance, c.withdrawals)
			if c.want == nil {
				if err != nil {
					t.Fatalf("want nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, c.want) {
				t.Fatalf("want %v, got %v", c.want, err)
			}
		})
	}
}

func TestEvaluateCustomPolicy(t *testing.T) {
	p := WithdrawalPolicy{Limit: dec(100), MaxWithdrawals: 1}
	if err := p.Evaluate(dec(150), dec(1000), 0); !errors.Is(err, ErrWithdrawalLimitExceeded) {
		t.Fatalf("want ErrWithdrawalLimitExceeded, got %v", err)
	}
	if err := p.Evaluate(dec(100), dec(1000), 1); !errors.Is(err, ErrMaxWithdrawalsExceeded) {
		t.Fatalf("want ErrMaxWithdrawalsExceeded, got %v", err)
	}
}

func TestValidateDeposit(t *testing.T) {
	if err := ValidateDeposit(decimal.RequireFromString("0.01")); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	if err := ValidateDeposit(dec(1_000_000_000)); err != nil {
		t.Fatalf("deposits have no upper bound, got %v", err)
	}
	if err := ValidateDeposit(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount, got %v", err)
	}
}
