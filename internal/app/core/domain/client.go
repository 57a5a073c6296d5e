package domain

// Client 銀行客戶 (自然人)，以稅號 (TaxID) 唯一識別。
// 建立後不會再被修改或刪除。
type Client struct {
	TaxID     string
	Name      string
	BirthDate string
	Address   string
}

// NewClient 建立客戶
func NewClient(taxID, name, birthDate, address string) *Client {
	return &Client{
		TaxID:     taxID,
		Name:      name,
		BirthDate: birthDate,
		Address:   address,
	}
}
