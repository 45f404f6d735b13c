package request

import "github.com/shopspring/decimal"

// InvoicePrintQuery holds the optional partial payment amounts of a print request.
// A positive dp_amount prints a down payment invoice, a positive pelunasan_amount
// prints a settlement invoice.
type InvoicePrintQuery struct {
	DPAmount        string `form:"dp_amount" binding:"omitempty,numeric"`
	PelunasanAmount string `form:"pelunasan_amount" binding:"omitempty,numeric"`
}

// Amounts parses the query amounts. Blank values are returned as nil.
func (q *InvoicePrintQuery) Amounts() (dp, pelunasan *decimal.Decimal, err error) {
	if dp, err = parseAmount(q.DPAmount); err != nil {
		return nil, nil, err
	}
	if pelunasan, err = parseAmount(q.PelunasanAmount); err != nil {
		return nil, nil, err
	}
	return dp, pelunasan, nil
}

func parseAmount(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
