package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nexyrt/agsa-finance/pkg/utils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func withUser(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != uuid.Nil {
			c.Set(ClaimsKey, &utils.JWTClaims{UserID: id})
		}
		c.Next()
	}
}

func TestUserRateLimiter(t *testing.T) {
	rl := NewUserRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 0.001,
		BurstSize:         2,
		CleanupInterval:   time.Minute,
		EntryTTL:          time.Minute,
	})
	defer rl.Stop()

	alice, bob := uuid.New(), uuid.New()
	serve := func(user uuid.UUID) int {
		router := gin.New()
		router.Use(withUser(user), rl.Middleware())
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, serve(alice))
	assert.Equal(t, http.StatusOK, serve(alice))
	assert.Equal(t, http.StatusTooManyRequests, serve(alice))
	assert.Equal(t, http.StatusOK, serve(bob))
}

func TestUserRateLimiter_Cleanup(t *testing.T) {
	rl := NewUserRateLimiter(RateLimiterConfig{RequestsPerSecond: 1, BurstSize: 1, CleanupInterval: time.Hour, EntryTTL: -time.Second})
	defer rl.Stop()

	rl.getLimiter("user:1")
	rl.cleanup()

	assert.Empty(t, rl.limiters)
}

func TestRateLimiterConfigFromWindow(t *testing.T) {
	cfg := RateLimiterConfigFromWindow(60, 60)
	assert.InDelta(t, 1.0, cfg.RequestsPerSecond, 0.0001)
	assert.Equal(t, 60, cfg.BurstSize)

	assert.Equal(t, DefaultRateLimiterConfig(), RateLimiterConfigFromWindow(0, 60))
}

func TestRequirePermission(t *testing.T) {
	serve := func(permissions []string) int {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if permissions != nil {
				c.Set(ClaimsKey, &utils.JWTClaims{UserID: uuid.New(), Permissions: permissions})
			}
			c.Next()
		}, RequirePermission("view-invoices"))
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, serve([]string{"print-invoices", "view-invoices"}))
	assert.Equal(t, http.StatusForbidden, serve([]string{"print-invoices"}))
	assert.Equal(t, http.StatusForbidden, serve(nil))
}

func TestLoggerMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	router := gin.New()
	router.Use(LoggerMiddleware(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/ok?x=1", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, "/ok?x=1", entries[0].ContextMap()["path"])
		assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	}
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := utils.NewJWTManager("secret", "agsa-finance", time.Hour, time.Hour)
	userID := uuid.New()
	token, err := jwtManager.GenerateAccessToken(userID, "a@agsa.co.id", []string{"finance"}, []string{"view-invoices"})
	assert.NoError(t, err)

	var seen uuid.UUID
	router := gin.New()
	router.Use(AuthMiddleware(jwtManager))
	router.GET("/", func(c *gin.Context) {
		seen, _ = UserID(c)
		c.Status(http.StatusOK)
	})

	serve := func(header string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, serve(""))
	assert.Equal(t, http.StatusUnauthorized, serve("Token "+token))
	assert.Equal(t, http.StatusUnauthorized, serve("Bearer "))
	assert.Equal(t, http.StatusUnauthorized, serve("Bearer not-a-jwt"))
	assert.Equal(t, http.StatusOK, serve("bearer "+token))
	assert.Equal(t, userID, seen)
}
