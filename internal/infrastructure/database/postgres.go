package database

import (
	"fmt"
	"log"

	"github.com/manikandans/billbook-api/internal/config"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/internal/domain/enum"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

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
		// Accounts and seller profile
		&entity.User{},
		&entity.CompanyProfile{},

		// Catalog and inventory
		&entity.Product{},
		&entity.StockEntry{},
		&entity.DamagedStock{},

		// Parties
		&entity.Customer{},
		&entity.Vendor{},

		// Transactions
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Bill{},
		&entity.BillItem{},
		&entity.Payment{},
		&entity.Expense{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the admin account and the seller profile. Both
// are created only when missing, so repeated boots are safe.
func SeedDefaultData(db *gorm.DB, company *config.CompanyConfig) error {
	log.Println("Seeding default data...")

	adminEmployeeID := viper.GetString("ADMIN_EMPLOYEE_ID")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmployeeID != "" && adminPassword != "" {
		var existing entity.User
		if err := db.Where("employee_id = ?", adminEmployeeID).First(&existing).Error; err != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Administrator"
				}
				admin := entity.User{
					EmployeeID:   adminEmployeeID,
					Name:         adminName,
					PasswordHash: string(hashed),
					Role:         enum.RoleAdmin,
					IsActive:     true,
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminEmployeeID)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmployeeID)
		}
	}

	if company != nil && company.Name != "" {
		var existing entity.CompanyProfile
		if err := db.First(&existing).Error; err != nil {
			profile := entity.CompanyProfile{
				Name:        company.Name,
				Address:     company.Address,
				GSTNumber:   company.GSTNumber,
				Phone:       company.Phone,
				BankDetails: company.BankDetails,
			}
			if err := db.Create(&profile).Error; err != nil {
				log.Printf("Warning: failed to create company profile: %v", err)
			} else {
				log.Printf("Company profile created: %s", company.Name)
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
