package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexyrt/agsa-finance/internal/domain/entity"
)

const tokenTypeBearer = "Bearer"

// UserResponse is the public view of a user
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Roles       []string  `json:"roles"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewUserResponse maps a user with its roles loaded
func NewUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Roles:       u.RoleNames(),
		Permissions: u.GetPermissions(),
		CreatedAt:   u.CreatedAt,
	}
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"user,omitempty"`
}

// NewTokenResponse builds a bearer token response. expiresIn is reported in seconds.
func NewTokenResponse(accessToken, refreshToken string, expiresIn time.Duration, user *entity.User) *TokenResponse {
	resp := &TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int64(expiresIn / time.Second),
	}
	if user != nil {
		resp.User = NewUserResponse(user)
	}
	return resp
}
