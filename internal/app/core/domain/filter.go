package domain

// AccountFilter 帳戶查詢條件，零值欄位代表不限制
type AccountFilter struct {
	TaxID  string
	Number int64
}

// Match 判斷帳戶是否符合條件
func (f AccountFilter) Match(a *Account) bool {
	if f.TaxID != "" && (a.Owner == nil || a.Owner.TaxID != f.TaxID) {
		return false
	}
	if f.Number != 0 && a.Number != f.Number {
		return false
	}
	return true
}
