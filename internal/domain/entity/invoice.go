package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nexyrt/agsa-finance/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice represents an issued billing document
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string             `gorm:"size:100;unique;not null" json:"invoice_number"`
	ClientID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"client_id"`
	IssueDate     time.Time          `gorm:"type:date;not null" json:"issue_date"`
	DueDate       time.Time          `gorm:"type:date;not null" json:"due_date"`
	Status        enum.InvoiceStatus `gorm:"size:30;default:'draft'" json:"status"`
	Subtotal      decimal.Decimal    `gorm:"type:numeric(15,2);not null;default:0" json:"subtotal"`
	TotalAmount   decimal.Decimal    `gorm:"type:numeric(15,2);not null;default:0" json:"total_amount"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Client   *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
	Payments []Payment     `gorm:"foreignKey:InvoiceID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem represents a billed service line. Items on one invoice may
// belong to different clients of the same group.
type InvoiceItem struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ClientID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"client_id"`
	ServiceName string            `gorm:"size:255;not null" json:"service_name"`
	Description *string           `gorm:"type:text" json:"description,omitempty"`
	Quantity    int               `gorm:"not null;default:1" json:"quantity"`
	Unit        string            `gorm:"size:50;default:'pcs'" json:"unit"`
	UnitPrice   decimal.Decimal   `gorm:"type:numeric(15,2);not null;default:0" json:"unit_price"`
	Amount      decimal.Decimal   `gorm:"type:numeric(15,2);not null;default:0" json:"amount"`
	Category    enum.ItemCategory `gorm:"column:is_tax_deposit;type:boolean;default:false" json:"category"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
	Client  *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

type invoiceItemJSON InvoiceItem

// MarshalJSON adds the is_tax_deposit flag next to the category.
func (it InvoiceItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		invoiceItemJSON
		IsTaxDeposit bool `json:"is_tax_deposit"`
	}{
		invoiceItemJSON: invoiceItemJSON(it),
		IsTaxDeposit:    it.Category.IsTaxDeposit(),
	})
}

// IsTaxDeposit reports whether the item is excluded from the tax base
func (it *InvoiceItem) IsTaxDeposit() bool {
	return it.Category.IsTaxDeposit()
}
