package service

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nexyrt/agsa-finance/internal/domain/entity"
	"github.com/nexyrt/agsa-finance/internal/domain/repository"
	"github.com/nexyrt/agsa-finance/pkg/apperror"
	"github.com/nexyrt/agsa-finance/pkg/terbilang"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DocumentRenderer turns an assembled invoice document into PDF bytes.
type DocumentRenderer interface {
	Render(doc *entity.InvoiceDocument) ([]byte, error)
}

// RenderedInvoice is a rendered PDF ready to be sent to the client.
type RenderedInvoice struct {
	Filename string
	Content  []byte
}

// InvoicePrintService assembles printable invoices and renders them.
type InvoicePrintService struct {
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyProfileRepository
	company     *CompanyInfoResolver
	renderer    DocumentRenderer
	logger      *zap.Logger
}

// NewInvoicePrintService creates a new invoice print service
func NewInvoicePrintService(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyProfileRepository,
	company *CompanyInfoResolver,
	renderer DocumentRenderer,
	logger *zap.Logger,
) *InvoicePrintService {
	return &InvoicePrintService{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		company:     company,
		renderer:    renderer,
		logger:      logger,
	}
}

// CompanyInfo returns the company block printed on invoices.
func (s *InvoicePrintService) CompanyInfo(ctx context.Context) (entity.CompanyInfo, error) {
	profile, err := s.companyRepo.Current(ctx)
	if err != nil {
		return entity.CompanyInfo{}, fmt.Errorf("failed to load company profile: %w", err)
	}
	return s.company.Resolve(profile), nil
}

// BuildViewModel assembles the printable document of invoice. The invoice must
// have its client, items and payments loaded. downPayment and settlement are
// optional and select the partial payment view when positive.
func (s *InvoicePrintService) BuildViewModel(
	ctx context.Context,
	invoice *entity.Invoice,
	downPayment, settlement *decimal.Decimal,
) (*entity.InvoiceDocument, error) {
	company, err := s.CompanyInfo(ctx)
	if err != nil {
		return nil, err
	}

	items := invoice.Items
	if items == nil {
		items = []entity.InvoiceItem{}
	}
	payments := invoice.Payments
	if payments == nil {
		payments = []entity.Payment{}
	}

	regular, taxDeposit := PartitionItems(items)
	amounts := CalculateAmounts(invoice.Subtotal, items)
	mode, displayAmount := ResolveDisplayMode(invoice.TotalAmount, downPayment, settlement)

	return &entity.InvoiceDocument{
		Invoice:         invoice,
		Client:          invoice.Client,
		Items:           items,
		RegularItems:    regular,
		TaxDepositItems: taxDeposit,
		Payments:        payments,
		Company:         company,
		InvoiceAmounts:  amounts,
		Terbilang:       ucFirst(terbilang.Convert(amounts.GrandTotal, true)),
		IsDownPayment:   mode == DisplayDownPayment,
		IsPelunasan:     mode == DisplaySettlement,
		DPAmount:        downPayment,
		PelunasanAmount: settlement,
		DisplayAmount:   displayAmount,
		TotalPaid:       SumPayments(payments),
	}, nil
}

// PrintData loads an invoice and returns its printable document without rendering it.
func (s *InvoicePrintService) PrintData(
	ctx context.Context,
	id uuid.UUID,
	downPayment, settlement *decimal.Decimal,
) (*entity.InvoiceDocument, error) {
	invoice, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.BuildViewModel(ctx, invoice, downPayment, settlement)
}

// GeneratePDF loads an invoice, assembles it and renders the PDF.
func (s *InvoicePrintService) GeneratePDF(
	ctx context.Context,
	id uuid.UUID,
	downPayment, settlement *decimal.Decimal,
) (*RenderedInvoice, error) {
	doc, err := s.PrintData(ctx, id, downPayment, settlement)
	if err != nil {
		return nil, err
	}

	content, err := s.renderer.Render(doc)
	if err != nil {
		s.logger.Error("failed to render invoice",
			zap.String("invoice_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("invoice rendered",
		zap.String("invoice_id", id.String()),
		zap.String("invoice_number", doc.Invoice.InvoiceNumber),
		zap.Bool("down_payment", doc.IsDownPayment),
		zap.Bool("settlement", doc.IsPelunasan),
		zap.Int("bytes", len(content)),
	)

	return &RenderedInvoice{
		Filename: InvoiceFilename(doc.Invoice.InvoiceNumber),
		Content:  content,
	}, nil
}

// Download renders the full invoice.
func (s *InvoicePrintService) Download(ctx context.Context, id uuid.UUID) (*RenderedInvoice, error) {
	return s.GeneratePDF(ctx, id, nil, nil)
}

func (s *InvoicePrintService) load(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetForPrint(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice: %w", err)
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

func ucFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
