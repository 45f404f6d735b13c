package repository

import (
	"context"
	"errors"

	"github.com/nexyrt/agsa-finance/internal/domain/entity"
	domainRepo "github.com/nexyrt/agsa-finance/internal/domain/repository"
	"gorm.io/gorm"
)

type companyProfileRepository struct {
	db *gorm.DB
}

// NewCompanyProfileRepository creates a new company profile repository
func NewCompanyProfileRepository(db *gorm.DB) domainRepo.CompanyProfileRepository {
	return &companyProfileRepository{db: db}
}

// Current returns the most recently updated profile
func (r *companyProfileRepository) Current(ctx context.Context) (*entity.CompanyProfile, error) {
	var profile entity.CompanyProfile
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
