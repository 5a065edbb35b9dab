package database

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"github.com/syedahad2205/dajaj-pos/internal/config"
	"github.com/syedahad2205/dajaj-pos/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Operator{},
		&entity.Bill{},
		&entity.BillItem{},
		&entity.BillItemAddon{},
		&entity.BillCounter{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultOperator creates the default operator account if configured
// via environment variables. Does nothing when the account already exists.
func SeedDefaultOperator(db *gorm.DB) error {
	email := viper.GetString("OPERATOR_EMAIL")
	password := viper.GetString("OPERATOR_PASSWORD")
	name := viper.GetString("OPERATOR_NAME")

	if email == "" || password == "" {
		return nil
	}

	var existing entity.Operator
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Operator already exists: %s", email)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash operator password: %w", err)
	}

	if name == "" {
		name = "Cashier"
	}

	operator := entity.Operator{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := db.Create(&operator).Error; err != nil {
		return fmt.Errorf("failed to create operator: %w", err)
	}

	log.Printf("Operator account created: %s", email)
	return nil
}
