package cli

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	// lineWidth 標題與分隔線寬度
	lineWidth = 45
	// labelWidth 對帳單標籤欄寬
	labelWidth = 30
	// amountWidth 對帳單金額欄寬
	amountWidth = 15
	// optionWidth 選單代碼欄寬
	optionWidth = 5

	// maxAmountDigits 金額有效位數上限
	maxAmountDigits = 30
	// maxAmountExponent 金額指數絕對值上限，避免運算時展開成巨大整數
	maxAmountExponent = 30
)

var (
	minAccountNumber = decimal.NewFromInt(math.MinInt64)
	maxAccountNumber = decimal.NewFromInt(math.MaxInt64)
)

// alignLeft 靠左對齊，右側補空白到 width 個字元
func alignLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// alignRight 靠右對齊，左側補空白到 width 個字元
func alignRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// center 置中並以 fill 補齊；無法平分時多出的一格放在左側 (寬度為奇數時)
func center(s string, width int, fill string) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	margin := width - n
	left := margin/2 + (margin & width & 1)
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, margin-left)
}

// separator 分隔線
func separator() string {
	return strings.Repeat("=", lineWidth)
}

// title 置中標題，例如 "=== MENU ==="
func title(s string) string {
	return center(" "+s+" ", lineWidth, "=")
}

// label 對帳單標籤欄
func label(s string) string {
	return alignLeft(s+":", labelWidth)
}

// money 金額欄，固定兩位小數並靠右
func money(symbol string, v decimal.Decimal) string {
	return alignRight(symbol+" "+v.StringFixed(2), amountWidth)
}

// menuOption 選單項目，例如 "[d]   Deposit"
func menuOption(code, description string) string {
	return alignLeft("["+code+"]", optionWidth) + " " + description
}

// parseAmount 解析金額，無法解析或超出範圍時視為 0
func parseAmount(raw string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	exp := v.Exponent()
	if v.NumDigits() > maxAmountDigits || exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero
	}
	return v
}

// parseAccountNumber 解析帳戶號碼，無法解析或超出 int64 範圍時視為 0
func parseAccountNumber(raw string) int64 {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		return n
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0
	}
	v := parseAmount(raw)
	if !v.IsInteger() || v.LessThan(minAccountNumber) || v.GreaterThan(maxAccountNumber) {
		return 0
	}
	return v.IntPart()
}
