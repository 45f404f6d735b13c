package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CompanyBankAccount is a bank account printed in the payment section of an invoice
type CompanyBankAccount struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

// CompanyProfile describes the issuing company. At most one profile is current.
type CompanyProfile struct {
	ID                     uuid.UUID                               `gorm:"type:uuid;primary_key" json:"id"`
	Name                   string                                  `gorm:"size:255;not null" json:"name"`
	Address                string                                  `gorm:"type:text" json:"address"`
	Email                  string                                  `gorm:"size:255" json:"email"`
	Phone                  string                                  `gorm:"size:50" json:"phone"`
	LogoPath               *string                                 `gorm:"size:255" json:"logo_path,omitempty"`
	SignaturePath          *string                                 `gorm:"size:255" json:"signature_path,omitempty"`
	StampPath              *string                                 `gorm:"size:255" json:"stamp_path,omitempty"`
	BankAccounts           datatypes.JSONSlice[CompanyBankAccount] `gorm:"type:jsonb" json:"bank_accounts"`
	FinanceManagerName     string                                  `gorm:"size:255" json:"finance_manager_name"`
	FinanceManagerPosition string                                  `gorm:"size:255" json:"finance_manager_position"`
	IsPKP                  bool                                    `gorm:"column:is_pkp;default:false" json:"is_pkp"`
	NPWP                   *string                                 `gorm:"size:50;column:npwp" json:"npwp,omitempty"`
	PPNRate                decimal.Decimal                         `gorm:"type:numeric(5,2);default:11.00" json:"ppn_rate"`
	CreatedAt              time.Time                               `json:"created_at"`
	UpdatedAt              time.Time                               `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new company profile
func (p *CompanyProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CompanyProfile model
func (CompanyProfile) TableName() string {
	return "company_profiles"
}
