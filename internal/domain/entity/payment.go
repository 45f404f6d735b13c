package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BankAccount is a receiving account owned by the issuing company
type BankAccount struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BankName      string         `gorm:"size:100;not null" json:"bank_name"`
	AccountNumber string         `gorm:"size:50;not null" json:"account_number"`
	AccountName   string         `gorm:"size:255;not null" json:"account_name"`
	Branch        *string        `gorm:"size:255" json:"branch,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bank account
func (b *BankAccount) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BankAccount model
func (BankAccount) TableName() string {
	return "bank_accounts"
}

// Payment records money received against an invoice
type Payment struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	BankAccountID   *uuid.UUID      `gorm:"type:uuid;index" json:"bank_account_id,omitempty"`
	Amount          decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"amount"`
	PaymentDate     time.Time       `gorm:"type:date;not null" json:"payment_date"`
	PaymentMethod   string          `gorm:"size:50;default:'transfer'" json:"payment_method"`
	ReferenceNumber *string         `gorm:"size:100" json:"reference_number,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Relationships
	Invoice     Invoice      `gorm:"foreignKey:InvoiceID" json:"-"`
	BankAccount *BankAccount `gorm:"foreignKey:BankAccountID" json:"bank_account,omitempty"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
