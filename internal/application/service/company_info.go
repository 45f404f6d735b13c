package service

import (
	"github.com/nexyrt/agsa-finance/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// BrandingAssets turns stored image paths into inline data URIs.
// Missing files resolve to an empty string.
type BrandingAssets interface {
	ImageDataURI(path string) string
}

// CompanyDefaults is the company printed when no profile is stored.
type CompanyDefaults struct {
	Name              string
	Address           string
	Email             string
	Phone             string
	LogoPath          string
	SignaturePath     string
	StampPath         string
	BankName          string
	BankAccountNumber string
	BankAccountName   string
	SignerName        string
	SignerPosition    string
}

// CompanyInfoResolver maps the current company profile, or the defaults, to
// the printable company block.
type CompanyInfoResolver struct {
	defaults CompanyDefaults
	assets   BrandingAssets
}

// NewCompanyInfoResolver creates a new company info resolver
func NewCompanyInfoResolver(defaults CompanyDefaults, assets BrandingAssets) *CompanyInfoResolver {
	return &CompanyInfoResolver{
		defaults: defaults,
		assets:   assets,
	}
}

// Resolve returns the company info for profile, falling back to the defaults when profile is nil.
func (r *CompanyInfoResolver) Resolve(profile *entity.CompanyProfile) entity.CompanyInfo {
	if profile == nil {
		return r.fallback()
	}

	accounts := make([]entity.CompanyBankAccount, 0, len(profile.BankAccounts))
	accounts = append(accounts, profile.BankAccounts...)

	return entity.CompanyInfo{
		Name:            profile.Name,
		Address:         profile.Address,
		Email:           profile.Email,
		Phone:           profile.Phone,
		LogoBase64:      r.image(profile.LogoPath),
		SignatureBase64: r.image(profile.SignaturePath),
		StampBase64:     r.image(profile.StampPath),
		BankAccounts:    accounts,
		Signature: entity.CompanySigner{
			Name:     profile.FinanceManagerName,
			Position: profile.FinanceManagerPosition,
		},
		IsPKP:   profile.IsPKP,
		NPWP:    profile.NPWP,
		PPNRate: profile.PPNRate,
	}
}

func (r *CompanyInfoResolver) fallback() entity.CompanyInfo {
	d := r.defaults
	return entity.CompanyInfo{
		Name:            d.Name,
		Address:         d.Address,
		Email:           d.Email,
		Phone:           d.Phone,
		LogoBase64:      r.assets.ImageDataURI(d.LogoPath),
		SignatureBase64: r.assets.ImageDataURI(d.SignaturePath),
		StampBase64:     r.assets.ImageDataURI(d.StampPath),
		BankAccounts: []entity.CompanyBankAccount{
			{
				Bank:          d.BankName,
				AccountNumber: d.BankAccountNumber,
				AccountName:   d.BankAccountName,
			},
		},
		Signature: entity.CompanySigner{
			Name:     d.SignerName,
			Position: d.SignerPosition,
		},
		IsPKP:   false,
		NPWP:    nil,
		PPNRate: decimal.RequireFromString("11.00"),
	}
}

func (r *CompanyInfoResolver) image(path *string) string {
	if path == nil || *path == "" {
		return ""
	}
	return r.assets.ImageDataURI(*path)
}
