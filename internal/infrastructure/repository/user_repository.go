package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/nexyrt/agsa-finance/internal/domain/entity"
	domainRepo "github.com/nexyrt/agsa-finance/internal/domain/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

// GetByEmail matches the email case-insensitively. Roles are not loaded.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(r.db.WithContext(ctx), "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *userRepository) GetWithRoles(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.first(r.db.WithContext(ctx).Preload("Roles.Permissions"), "id = ?", id)
}

// first returns nil, nil when no user matches
func (r *userRepository) first(q *gorm.DB, cond string, args ...interface{}) (*entity.User, error) {
	var user entity.User
	err := q.Where(cond, args...).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
