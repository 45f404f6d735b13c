package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("APP_PORT", "9090")
	t.Setenv("COMPANY_FALLBACK_SIGNER_NAME", "Budi")

	cfg := Load()

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiryHours)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshExpiryHours)
	assert.Equal(t, "DejaVu Sans", cfg.PDF.FontFamily)
	assert.Equal(t, 150, cfg.PDF.DPI)
	assert.Equal(t, 60, cfg.RateLimit.Requests)
	assert.Equal(t, "./public/storage", cfg.Storage.PublicPath)

	fallback := DefaultCompanyFallback()
	assert.Equal(t, fallback.Name, cfg.CompanyFallback.Name)
	assert.Equal(t, fallback.BankAccountNumber, cfg.CompanyFallback.BankAccountNumber)
	assert.Equal(t, "Budi", cfg.CompanyFallback.SignerName)
}

func TestDefaultCompanyFallback(t *testing.T) {
	want := CompanyFallbackConfig{
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

	assert.Equal(t, want, DefaultCompanyFallback())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: "5432", Name: "agsa", User: "u", Password: "p", SSLMode: "disable", Timezone: "UTC"}
	assert.Equal(t, "host=db user=u password=p dbname=agsa port=5432 sslmode=disable TimeZone=UTC", c.DSN())
}
