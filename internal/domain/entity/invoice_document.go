package entity

import "github.com/shopspring/decimal"

// CompanySigner is the person who signs printed invoices.
type CompanySigner struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

// CompanyInfo is the issuing company as printed on the document header and footer.
// Image fields hold inline data URIs, or an empty string when the asset is missing.
type CompanyInfo struct {
	Name            string               `json:"name"`
	Address         string               `json:"address"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone"`
	LogoBase64      string               `json:"logo_base64"`
	SignatureBase64 string               `json:"signature_base64"`
	StampBase64     string               `json:"stamp_base64"`
	BankAccounts    []CompanyBankAccount `json:"bank_accounts"`
	Signature       CompanySigner        `json:"signature"`
	IsPKP           bool                 `json:"is_pkp"`
	NPWP            *string              `json:"npwp"`
	PPNRate         decimal.Decimal      `json:"ppn_rate"`
}

// InvoiceAmounts holds the tax figures derived from an invoice. Never persisted.
type InvoiceAmounts struct {
	SubtotalI  decimal.Decimal `json:"subtotal_i"`
	DPP        decimal.Decimal `json:"dpp"`
	PPN        decimal.Decimal `json:"ppn"`
	SubtotalII decimal.Decimal `json:"subtotal_ii"`
	PPh23      decimal.Decimal `json:"pph23"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// InvoiceDocument is a value object representing a printable invoice.
// It is NOT a database entity; it is composed from invoice data at print time.
type InvoiceDocument struct {
	Invoice         *Invoice      `json:"invoice"`
	Client          *Client       `json:"client"`
	Items           []InvoiceItem `json:"items"`
	RegularItems    []InvoiceItem `json:"regular_items"`
	TaxDepositItems []InvoiceItem `json:"tax_deposit_items"`
	Payments        []Payment     `json:"payments"`
	Company         CompanyInfo   `json:"company"`

	InvoiceAmounts
	Terbilang string `json:"terbilang"`

	IsDownPayment   bool             `json:"is_down_payment"`
	IsPelunasan     bool             `json:"is_pelunasan"`
	DPAmount        *decimal.Decimal `json:"dp_amount"`
	PelunasanAmount *decimal.Decimal `json:"pelunasan_amount"`
	DisplayAmount   decimal.Decimal  `json:"display_amount"`
	TotalPaid       decimal.Decimal  `json:"total_paid"`
}
