package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nexyrt/agsa-finance/internal/config"
)

// CORSMiddleware creates a CORS middleware from configuration. A single "*"
// origin allows every origin without credentials.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = orDefault(cfg.AllowedMethods, http.MethodGet, http.MethodPost, http.MethodOptions)
	corsConfig.AllowHeaders = orDefault(cfg.AllowedHeaders, "Origin", "Accept", "Authorization", "Content-Type", "X-Request-ID")
	// Browsers need Content-Disposition to name downloaded invoices
	corsConfig.ExposeHeaders = []string{"Content-Disposition", "Content-Length", "X-Request-ID"}

	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = orDefault(cfg.AllowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
		corsConfig.AllowCredentials = true
	}

	return cors.New(corsConfig)
}

func orDefault(values []string, defaults ...string) []string {
	if len(values) == 0 {
		return defaults
	}
	return values
}
