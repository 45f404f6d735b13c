package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nexyrt/agsa-finance/pkg/utils"
)

// Context keys set by the middleware chain
const (
	ClaimsKey    = "auth_claims"
	RequestIDKey = "request_id"
)

// Claims returns the token claims stored by AuthMiddleware
func Claims(c *gin.Context) (*utils.JWTClaims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*utils.JWTClaims)
	return claims, ok && claims != nil
}

// UserID returns the authenticated user's ID
func UserID(c *gin.Context) (uuid.UUID, bool) {
	claims, ok := Claims(c)
	if !ok || claims.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
