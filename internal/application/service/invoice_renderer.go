package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/nexyrt/agsa-finance/internal/domain/entity"
	"github.com/nexyrt/agsa-finance/pkg/pdf"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// PDFRenderer renders invoice documents as A4 PDFs.
type PDFRenderer struct {
	opts pdf.Options
}

// NewPDFRenderer creates a new PDF renderer
func NewPDFRenderer(opts pdf.Options) *PDFRenderer {
	return &PDFRenderer{opts: opts}
}

// Render implements DocumentRenderer.
func (r *PDFRenderer) Render(doc *entity.InvoiceDocument) ([]byte, error) {
	return FormatInvoice(doc, r.opts)
}

// FormatInvoice lays out an invoice document as PDF bytes.
func FormatInvoice(d *entity.InvoiceDocument, opts pdf.Options) ([]byte, error) {
	doc := pdf.NewDocument(opts)
	width := doc.ContentWidth()
	left := doc.Left()
	inv := d.Invoice
	company := d.Company

	// Letterhead
	top := doc.Y()
	if h, ok := doc.Image(company.LogoBase64, left, top, width, 0); ok {
		doc.SetY(top + h + 2)
	} else {
		doc.SetFont(pdf.StyleBold, 14).TextAlign(company.Name, pdf.AlignCenter).
			SetFont(pdf.StyleNormal, 9).TextAlign(company.Address, pdf.AlignCenter).
			TextAlign(contactLine(company), pdf.AlignCenter)
	}
	doc.Separator()

	doc.SetFont(pdf.StyleBold, 14).TextAlign(documentTitle(d), pdf.AlignCenter).LineFeed(3)

	// Invoice info
	doc.SetFont(pdf.StyleNormal, 10).
		Label("No. Invoice", inv.InvoiceNumber, 30).
		Label("Tanggal", formatDate(inv.IssueDate), 30).
		Label("Jatuh Tempo", formatDate(inv.DueDate), 30).
		Label("Status", inv.Status.Label(), 30)
	if company.IsPKP && company.NPWP != nil {
		doc.Label("NPWP", *company.NPWP, 30)
	}
	doc.LineFeed(3)

	// Bill to
	doc.SetFont(pdf.StyleBold, 10).Text("Kepada Yth.").SetFont(pdf.StyleNormal, 10)
	if d.Client != nil {
		doc.SetFont(pdf.StyleBold, 10).Text(d.Client.Name).SetFont(pdf.StyleNormal, 10)
		if d.Client.Address != nil && *d.Client.Address != "" {
			doc.Text(*d.Client.Address)
		}
		if d.Client.NPWP != nil && *d.Client.NPWP != "" {
			doc.Text("NPWP: " + *d.Client.NPWP)
		}
	}
	doc.LineFeed(3)

	// Items
	cols := itemColumns(width)
	doc.SetFont(pdf.StyleBold, 9).
		TableHeader(cols, []string{"No", "Klien", "Layanan", "Qty", "Harga Satuan", "Jumlah"}).
		SetFont(pdf.StyleNormal, 9)
	for i, item := range d.RegularItems {
		doc.TableRow(cols, itemRow(i+1, item))
	}
	doc.LineFeed(2)

	// Totals
	doc.SetFont(pdf.StyleNormal, 10)
	totals := func(label string, amount decimal.Decimal) {
		doc.SetX(left + width - 90).KeyValue(label, formatRupiah(amount), 90)
	}
	totals("Subtotal", d.SubtotalI)
	totals("DPP", d.DPP)
	totals("PPN 11%", d.PPN)
	totals("Subtotal II", d.SubtotalII)
	totals("PPh 23 (2%)", d.PPh23)
	doc.SetFont(pdf.StyleBold, 10)
	totals("Grand Total", d.GrandTotal)

	switch {
	case d.IsDownPayment:
		totals("Down Payment", d.DisplayAmount)
	case d.IsPelunasan:
		doc.SetFont(pdf.StyleNormal, 10)
		totals("Telah Dibayar", d.TotalPaid)
		doc.SetFont(pdf.StyleBold, 10)
		totals("Pelunasan", d.DisplayAmount)
	}
	doc.LineFeed(2)

	// Tax deposits are billed but excluded from DPP
	if len(d.TaxDepositItems) > 0 {
		doc.EnsureSpace(30).
			SetFont(pdf.StyleBold, 10).Text("Titipan Pajak").
			SetFont(pdf.StyleBold, 9).
			TableHeader(cols, []string{"No", "Klien", "Keterangan", "Qty", "Harga Satuan", "Jumlah"}).
			SetFont(pdf.StyleNormal, 9)
		for i, item := range d.TaxDepositItems {
			doc.TableRow(cols, itemRow(i+1, item))
		}
		doc.LineFeed(2)
	}

	doc.SetFont(pdf.StyleItalic, 10).Text("Terbilang: # " + d.Terbilang + " #").LineFeed(2)

	if inv.Notes != nil && *inv.Notes != "" {
		doc.SetFont(pdf.StyleBold, 10).Text("Catatan:").
			SetFont(pdf.StyleNormal, 10).Text(*inv.Notes).LineFeed(2)
	}

	// Payment info
	if len(company.BankAccounts) > 0 {
		doc.SetFont(pdf.StyleNormal, 10).Text("Pembayaran dapat ditransfer ke rekening berikut:")
		for _, account := range company.BankAccounts {
			doc.SetFont(pdf.StyleBold, 10).TextF("%s - %s", account.Bank, account.AccountNumber).
				SetFont(pdf.StyleNormal, 10).Text("a.n. " + account.AccountName)
		}
		doc.LineFeed(4)
	}

	// Signature
	doc.EnsureSpace(55)
	signX := left + width - 70
	signLine := func(s string) {
		doc.SetX(signX).TextAlign(s, pdf.AlignCenter)
	}
	doc.SetFont(pdf.StyleNormal, 10)
	signLine(formatDate(inv.IssueDate))
	signLine("Hormat kami,")
	signTop := doc.Y()
	doc.Image(company.StampBase64, signX+5, signTop, 30, 0)
	doc.Image(company.SignatureBase64, signX+20, signTop, 35, 0)
	doc.SetY(signTop + 28)
	doc.SetFont(pdf.StyleBold, 10)
	signLine(company.Signature.Name)
	doc.SetFont(pdf.StyleNormal, 10)
	signLine(company.Signature.Position)

	return doc.Bytes()
}

func documentTitle(d *entity.InvoiceDocument) string {
	switch {
	case d.IsDownPayment:
		return "INVOICE DOWN PAYMENT"
	case d.IsPelunasan:
		return "INVOICE PELUNASAN"
	default:
		return "INVOICE"
	}
}

func contactLine(c entity.CompanyInfo) string {
	parts := make([]string, 0, 2)
	if c.Phone != "" {
		parts = append(parts, "Telp. "+c.Phone)
	}
	if c.Email != "" {
		parts = append(parts, "Email: "+c.Email)
	}
	return strings.Join(parts, " | ")
}

func itemColumns(width float64) []pdf.Column {
	return []pdf.Column{
		{Width: 10, Align: pdf.AlignCenter},
		{Width: 40, Align: pdf.AlignLeft},
		{Width: width - 130, Align: pdf.AlignLeft},
		{Width: 20, Align: pdf.AlignCenter},
		{Width: 30, Align: pdf.AlignRight},
		{Width: 30, Align: pdf.AlignRight},
	}
}

func itemRow(no int, item entity.InvoiceItem) []string {
	client := ""
	if item.Client != nil {
		client = item.Client.Name
	}
	return []string{
		fmt.Sprintf("%d", no),
		client,
		item.ServiceName,
		fmt.Sprintf("%d %s", item.Quantity, item.Unit),
		formatNumber(item.UnitPrice),
		formatNumber(item.Amount),
	}
}

// formatNumber formats an amount with Indonesian separators, e.g. 1.250.000 or 135.802,37.
func formatNumber(amount decimal.Decimal) string {
	if amount.Equal(amount.Truncate(0)) {
		return rupiahPrinter.Sprintf("%d", amount.IntPart())
	}
	f, _ := amount.Round(2).Float64()
	return rupiahPrinter.Sprintf("%.2f", f)
}

func formatRupiah(amount decimal.Decimal) string {
	return "Rp " + formatNumber(amount)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
}
