package repository

import (
	"context"

	"github.com/nexyrt/agsa-finance/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_company_profile_repository.go -package=mocks . CompanyProfileRepository

// CompanyProfileRepository defines the interface for company profile data access
type CompanyProfileRepository interface {
	// Current returns the active company profile, or nil when none is stored.
	Current(ctx context.Context) (*entity.CompanyProfile, error)
}
