package service

import (
	"github.com/nexyrt/agsa-finance/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Fixed tax rates. The company profile's ppn_rate is displayed but never used here.
var (
	ppnRate   = decimal.RequireFromString("0.11")
	pph23Rate = decimal.RequireFromString("0.02")
)

// DisplayMode selects which amount the printed document presents.
type DisplayMode int

const (
	DisplayFull DisplayMode = iota
	DisplayDownPayment
	DisplaySettlement
)

// String returns the display mode name
func (m DisplayMode) String() string {
	switch m {
	case DisplayDownPayment:
		return "down_payment"
	case DisplaySettlement:
		return "settlement"
	default:
		return "full"
	}
}

// PartitionItems splits items into regular and tax deposit items, keeping order.
func PartitionItems(items []entity.InvoiceItem) (regular, taxDeposit []entity.InvoiceItem) {
	regular = make([]entity.InvoiceItem, 0, len(items))
	taxDeposit = make([]entity.InvoiceItem, 0)
	for _, item := range items {
		if item.IsTaxDeposit() {
			taxDeposit = append(taxDeposit, item)
			continue
		}
		regular = append(regular, item)
	}
	return regular, taxDeposit
}

// CalculateAmounts derives the tax figures of an invoice. Only regular items
// form the tax base (DPP); subtotal is trusted as stored.
func CalculateAmounts(subtotal decimal.Decimal, items []entity.InvoiceItem) entity.InvoiceAmounts {
	dpp := decimal.Zero
	for _, item := range items {
		if !item.IsTaxDeposit() {
			dpp = dpp.Add(item.Amount)
		}
	}

	ppn := dpp.Mul(ppnRate)
	subtotalII := subtotal.Add(ppn)
	pph23 := dpp.Mul(pph23Rate)

	return entity.InvoiceAmounts{
		SubtotalI:  subtotal,
		DPP:        dpp,
		PPN:        ppn,
		SubtotalII: subtotalII,
		PPh23:      pph23,
		GrandTotal: subtotalII.Sub(pph23),
	}
}

// ResolveDisplayMode picks the display mode and amount. A positive down payment
// wins over a positive settlement; otherwise the invoice total is shown.
func ResolveDisplayMode(total decimal.Decimal, downPayment, settlement *decimal.Decimal) (DisplayMode, decimal.Decimal) {
	if downPayment != nil && downPayment.IsPositive() {
		return DisplayDownPayment, *downPayment
	}
	if settlement != nil && settlement.IsPositive() {
		return DisplaySettlement, *settlement
	}
	return DisplayFull, total
}

// SumPayments totals the amounts of all payments.
func SumPayments(payments []entity.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}
