package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nexyrt/agsa-finance/internal/domain/entity"
	domainRepo "github.com/nexyrt/agsa-finance/internal/domain/repository"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) GetForPrint(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoice_items.created_at ASC")
		}).
		Preload("Items.Client").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("payments.payment_date ASC")
		}).
		Preload("Payments.BankAccount").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

