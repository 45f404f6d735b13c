package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nexyrt/agsa-finance/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_invoice_repository.go -package=mocks . InvoiceRepository

// InvoiceRepository defines the interface for invoice data access
type InvoiceRepository interface {
	// GetForPrint loads an invoice with its client, items (with client) and
	// payments (with bank account). Returns nil when the invoice does not exist.
	GetForPrint(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
}
