package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App             AppConfig
	Database        DatabaseConfig
	JWT             JWTConfig
	Storage         StorageConfig
	CORS            CORSConfig
	RateLimit       RateLimitConfig
	Log             LogConfig
	PDF             PDFConfig
	Admin           AdminConfig
	CompanyFallback CompanyFallbackConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

// StorageConfig points at the public storage root that branding images
// (logo, signature, stamp) are resolved against.
type StorageConfig struct {
	PublicPath string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type LogConfig struct {
	Level string
}

type PDFConfig struct {
	FontFamily string
	FontDir    string
	DPI        int
}

// AdminConfig is the administrator account seeded on startup when set
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

// CompanyFallbackConfig is the company printed on invoices when no company
// profile has been stored yet.
type CompanyFallbackConfig struct {
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

// DefaultCompanyFallback returns the built-in fallback company.
func DefaultCompanyFallback() CompanyFallbackConfig {
	return CompanyFallbackConfig{
		Name:              "PT. KINARA SADAYATRA NUSANTARA",
		Address:           "Jl. A. Wahab Syahranie Perum Pondok Alam Indah, Nomor 3D, Kel. Sempaja Barat, Kota Samarinda - Kalimantan Timur",
		Email:             "kisantra.official@gmail.com",
		Phone:             "0852-8888-2600",
		LogoPath:          "images/letter-head.png",
		SignaturePath:     "images/pdf-signature.png",
		StampPath:         "images/kisantra-stamp.png",
		BankName:          "MANDIRI",
		BankAccountNumber: "1480045452425",
		BankAccountName:   "PT. KINARA SADAYATRA NUSANTARA",
		SignerName:        "Mohammad Denny Jodysetiawan",
		SignerPosition:    "Manajer Keuangan",
	}
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	setDefaults()

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		Storage: StorageConfig{
			PublicPath: viper.GetString("STORAGE_PUBLIC_PATH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		PDF: PDFConfig{
			FontFamily: viper.GetString("PDF_FONT_FAMILY"),
			FontDir:    viper.GetString("PDF_FONT_DIR"),
			DPI:        viper.GetInt("PDF_DPI"),
		},
		Admin: AdminConfig{
			Name:     viper.GetString("ADMIN_NAME"),
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		CompanyFallback: CompanyFallbackConfig{
			Name:              viper.GetString("COMPANY_FALLBACK_NAME"),
			Address:           viper.GetString("COMPANY_FALLBACK_ADDRESS"),
			Email:             viper.GetString("COMPANY_FALLBACK_EMAIL"),
			Phone:             viper.GetString("COMPANY_FALLBACK_PHONE"),
			LogoPath:          viper.GetString("COMPANY_FALLBACK_LOGO_PATH"),
			SignaturePath:     viper.GetString("COMPANY_FALLBACK_SIGNATURE_PATH"),
			StampPath:         viper.GetString("COMPANY_FALLBACK_STAMP_PATH"),
			BankName:          viper.GetString("COMPANY_FALLBACK_BANK_NAME"),
			BankAccountNumber: viper.GetString("COMPANY_FALLBACK_BANK_ACCOUNT_NUMBER"),
			BankAccountName:   viper.GetString("COMPANY_FALLBACK_BANK_ACCOUNT_NAME"),
			SignerName:        viper.GetString("COMPANY_FALLBACK_SIGNER_NAME"),
			SignerPosition:    viper.GetString("COMPANY_FALLBACK_SIGNER_POSITION"),
		},
	}
}

func setDefaults() {
	viper.SetDefault("APP_NAME", "agsa-finance")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "agsa_finance")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Makassar")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("STORAGE_PUBLIC_PATH", "./public/storage")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 60)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PDF_FONT_FAMILY", "DejaVu Sans")
	viper.SetDefault("PDF_FONT_DIR", "./resources/fonts")
	viper.SetDefault("PDF_DPI", 150)

	fallback := DefaultCompanyFallback()
	viper.SetDefault("COMPANY_FALLBACK_NAME", fallback.Name)
	viper.SetDefault("COMPANY_FALLBACK_ADDRESS", fallback.Address)
	viper.SetDefault("COMPANY_FALLBACK_EMAIL", fallback.Email)
	viper.SetDefault("COMPANY_FALLBACK_PHONE", fallback.Phone)
	viper.SetDefault("COMPANY_FALLBACK_LOGO_PATH", fallback.LogoPath)
	viper.SetDefault("COMPANY_FALLBACK_SIGNATURE_PATH", fallback.SignaturePath)
	viper.SetDefault("COMPANY_FALLBACK_STAMP_PATH", fallback.StampPath)
	viper.SetDefault("COMPANY_FALLBACK_BANK_NAME", fallback.BankName)
	viper.SetDefault("COMPANY_FALLBACK_BANK_ACCOUNT_NUMBER", fallback.BankAccountNumber)
	viper.SetDefault("COMPANY_FALLBACK_BANK_ACCOUNT_NAME", fallback.BankAccountName)
	viper.SetDefault("COMPANY_FALLBACK_SIGNER_NAME", fallback.SignerName)
	viper.SetDefault("COMPANY_FALLBACK_SIGNER_POSITION", fallback.SignerPosition)
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
