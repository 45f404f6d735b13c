package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nexyrt/agsa-finance/internal/config"
	"github.com/nexyrt/agsa-finance/internal/domain/entity"
	"github.com/nexyrt/agsa-finance/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)

	log.Info("connected to PostgreSQL", zap.String("host", cfg.Host), zap.String("database", cfg.Name))
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")

	err := db.AutoMigrate(
		// Access control
		&entity.Permission{},
		&entity.Role{},
		&entity.User{},

		// Billing
		&entity.Client{},
		&entity.BankAccount{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.Payment{},
		&entity.CompanyProfile{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("database migrations completed")
	return nil
}

// SeedDefaultData seeds invoice permissions, the finance roles and, when
// configured, an administrator account.
func SeedDefaultData(db *gorm.DB, admin config.AdminConfig, log *zap.Logger) error {
	permissionNames := []string{
		entity.PermissionViewInvoices,
		entity.PermissionPrintInvoices,
	}

	permissions := make([]entity.Permission, 0, len(permissionNames))
	for _, name := range permissionNames {
		p := entity.Permission{Name: name, GuardName: "web"}
		if err := db.Where(entity.Permission{Name: name}).FirstOrCreate(&p).Error; err != nil {
			return fmt.Errorf("failed to seed permission %s: %w", name, err)
		}
		permissions = append(permissions, p)
	}

	roles := map[string][]entity.Permission{
		"admin":   permissions,
		"finance": permissions,
		"viewer":  permissions[:1],
	}
	for name, perms := range roles {
		if err := seedRole(db, name, perms); err != nil {
			return err
		}
	}

	email := strings.ToLower(strings.TrimSpace(admin.Email))
	if email == "" || admin.Password == "" {
		log.Info("default data seeded")
		return nil
	}

	var existing entity.User
	err := db.Where("LOWER(email) = ?", email).First(&existing).Error
	if err == nil {
		log.Info("admin user already exists", zap.String("email", email))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hashed, err := utils.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	var adminRole entity.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		return fmt.Errorf("failed to load admin role: %w", err)
	}

	name := admin.Name
	if name == "" {
		name = "Administrator"
	}
	user := entity.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Roles:    []entity.Role{adminRole},
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Info("admin user created", zap.String("email", email))
	log.Info("default data seeded")
	return nil
}

func seedRole(db *gorm.DB, name string, permissions []entity.Permission) error {
	var role entity.Role
	err := db.Where("name = ?", name).First(&role).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up role %s: %w", name, err)
	}

	role = entity.Role{
		Name:        name,
		GuardName:   "web",
		Permissions: permissions,
	}
	if err := db.Create(&role).Error; err != nil {
		return fmt.Errorf("failed to create role %s: %w", name, err)
	}
	return nil
}
