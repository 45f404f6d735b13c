package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nexyrt/agsa-finance/internal/domain/entity"
	"github.com/nexyrt/agsa-finance/internal/domain/repository/mocks"
	"github.com/nexyrt/agsa-finance/pkg/apperror"
	"github.com/nexyrt/agsa-finance/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newAuthFixture(t *testing.T) (*mocks.MockUserRepository, *utils.JWTManager, *AuthService) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	jwtManager := utils.NewJWTManager("test-secret", "agsa-finance", time.Hour, 24*time.Hour)
	return users, jwtManager, NewAuthService(users, jwtManager, zap.NewNop())
}

func financeUser(t *testing.T, password string) *entity.User {
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{
		ID:       uuid.New(),
		Name:     "Finance",
		Email:    "finance@agsa.co.id",
		Password: hash,
		Roles: []entity.Role{
			{Name: "finance", Permissions: []entity.Permission{{Name: "view-invoices"}, {Name: "print-invoices"}}},
		},
	}
}

func TestAuthService_Login(t *testing.T) {
	users, jwtManager, svc := newAuthFixture(t)
	user := financeUser(t, "rahasia123")
	users.EXPECT().GetByEmail(gomock.Any(), "finance@agsa.co.id").Return(user, nil)
	users.EXPECT().GetWithRoles(gomock.Any(), user.ID).Return(user, nil)

	out, err := svc.Login(context.Background(), &LoginInput{Email: "finance@agsa.co.id", Password: "rahasia123"})
	require.NoError(t, err)

	assert.Same(t, user, out.User)
	claims, err := jwtManager.ValidateAccessToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.ElementsMatch(t, []string{"view-invoices", "print-invoices"}, claims.Permissions)

	userID, err := jwtManager.ValidateRefreshToken(out.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		users, _, svc := newAuthFixture(t)
		users.EXPECT().GetByEmail(gomock.Any(), "nobody@agsa.co.id").Return(nil, nil)

		_, err := svc.Login(context.Background(), &LoginInput{Email: "nobody@agsa.co.id", Password: "x"})
		assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		users, _, svc := newAuthFixture(t)
		users.EXPECT().GetByEmail(gomock.Any(), "finance@agsa.co.id").Return(financeUser(t, "rahasia123"), nil)

		_, err := svc.Login(context.Background(), &LoginInput{Email: "finance@agsa.co.id", Password: "salah"})
		assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})

	t.Run("repository error", func(t *testing.T) {
		users, _, svc := newAuthFixture(t)
		dbErr := errors.New("db down")
		users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, err := svc.Login(context.Background(), &LoginInput{Email: "finance@agsa.co.id", Password: "x"})
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	users, jwtManager, svc := newAuthFixture(t)
	user := financeUser(t, "rahasia123")
	refresh, err := jwtManager.GenerateRefreshToken(user.ID)
	require.NoError(t, err)
	users.EXPECT().GetWithRoles(gomock.Any(), user.ID).Return(user, nil)

	out, err := svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
}

func TestAuthService_RefreshToken_Invalid(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestAuthService_GetCurrentUser_NotFound(t *testing.T) {
	users, _, svc := newAuthFixture(t)
	id := uuid.New()
	users.EXPECT().GetWithRoles(gomock.Any(), id).Return(nil, nil)

	_, err := svc.GetCurrentUser(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}
