package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nexyrt/agsa-finance/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_user_repository.go -package=mocks . UserRepository

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetWithRoles(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
