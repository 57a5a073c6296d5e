package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCenter(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{" MENU ", 12, "=== MENU ==="},
		{"ab", 5, "==ab="},
		{"abc", 6, "=abc=="},
		{"toolong", 3, "toolong"},
	}
	for _, c := range cases {
		if got := center(c.in, c.width, "="); got != c.want {
			t.Fatalf("center(%q,%d)=%q want=%q", c.in, c.width, got, c.want)
		}
	}
	if got := title("MENU"); len(got) != lineWidth {
		t.Fatalf("title width=%d want=%d", len(got), lineWidth)
	}
}

func TestAlign(t *testing.T) {
	if got := alignLeft("Depósito:", 12); got != "Depósito:   " {
		t.Fatalf("alignLeft counts runes, got %q", got)
	}
	if got := alignRight("R$ 1.00", 10); got != "   R$ 1.00" {
		t.Fatalf("alignRight got %q", got)
	}
	if got := menuOption("lac", "List"); got != "[lac] List" {
		t.Fatalf("menuOption got %q", got)
	}
	if got := menuOption("d", "Deposit"); got != "[d]   Deposit" {
		t.Fatalf("menuOption got %q", got)
	}
}

func TestMoney(t *testing.T) {
	got := money("R$", decimal.RequireFromString("1234.5"))
	if got != "     R$ 1234.50" {
		t.Fatalf("money got %q", got)
	}
	if got := label("Deposit"); len(got) != labelWidth || got[:8] != "Deposit:" {
		t.Fatalf("label got %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"100":    "100",
		" 12.5 ": "12.5",
		"-3":     "-3",
		"abc":    "0",
		"":       "0",
		"1,5":    "0",
		// 指數或位數過大時視為無效，避免運算時展開成巨大整數
		"1e50000000":                      "0",
		"1e-50000000":                     "0",
		"1234567890123456789012345678901": "0",
		"1e30":                            "1e30",
	}
	for in, want := range cases {
		if got := parseAmount(in); !got.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("parseAmount(%q)=%s want=%s", in, got, want)
		}
	}
}

func TestParseAccountNumber(t *testing.T) {
	cases := map[string]int64{
		"1":   1,
		" 42": 42,
		"2.0": 2,
		"2.5": 0,
		"x":   0,
		"":    0,
		// 超出 int64 範圍不可回繞成其他帳號
		"18446744073709551617":     0,
		"9223372036854775808":      0,
		"1.8446744073709551617e19": 0,
		"9223372036854775807":      9223372036854775807,
	}
	for in, want := range cases {
		if got := parseAccountNumber(in); got != want {
			t.Fatalf("parseAccountNumber(%q)=%d want=%d", in, got, want)
		}
	}
}
