package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/edupay/edupay-api/internal/config"
	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/edupay/edupay-api/internal/domain/enum"
	"github.com/edupay/edupay-api/pkg/utils"
	"github.com/shopspring/decimal"
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
		// Tenant entities
		&entity.School{},
		&entity.SchoolBranding{},
		&entity.Student{},

		// Billing entities
		&entity.Invoice{},
		&entity.InvoiceItem{},

		// Document entities
		&entity.GeneratedArtifact{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds a development school with branding and a sample
// invoice when the database is empty. Production tenants are provisioned by
// the admin console.
func SeedDefaultData(db *gorm.DB) error {
	const schoolName = "Demo Academy"
	slug := utils.Slugify(schoolName)

	var school entity.School
	err := db.First(&school, "slug = ?", slug).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check seed school: %w", err)
	}

	log.Println("Seeding default school...")

	school = entity.School{
		Name: schoolName,
		Slug: slug,
	}
	if err := db.Create(&school).Error; err != nil {
		return fmt.Errorf("failed to seed school: %w", err)
	}

	branding := entity.SchoolBranding{
		SchoolID:       school.ID,
		PrimaryColor:   "#1f2937",
		SecondaryColor: "#6b7280",
		FooterText:     schoolName,
		PaymentTerms:   "Fees are payable within 30 days of the invoice date.",
		PaymentMethods: entity.PaymentMethodTags{"M-Pesa", "Bank Transfer"},
	}
	if err := db.Create(&branding).Error; err != nil {
		return fmt.Errorf("failed to seed branding: %w", err)
	}

	admissionNo := "ADM-0001"
	className := "Grade 6"
	student := entity.Student{
		SchoolID:    school.ID,
		Name:        "Amina Wanjiku",
		AdmissionNo: admissionNo,
		ClassName:   &className,
	}
	if err := db.Create(&student).Error; err != nil {
		return fmt.Errorf("failed to seed student: %w", err)
	}

	now := time.Now()
	invoice := entity.Invoice{
		SchoolID:   school.ID,
		StudentID:  &student.ID,
		Number:     utils.GenerateInvoiceNo("INV", 1),
		IssueDate:  now,
		DueDate:    now.AddDate(0, 0, 30),
		Currency:   "KES",
		BillingFor: "Term 1 Fees",
		Status:     enum.InvoiceStatusPending,
		Items: []entity.InvoiceItem{
			{
				Description: "Tuition",
				Category:    "Tuition",
				Quantity:    1,
				UnitPrice:   decimal.NewFromInt(15000),
				TaxRate:     decimal.Zero,
			},
			{
				Description: "Activity Fee",
				Category:    "Extracurricular",
				Quantity:    1,
				UnitPrice:   decimal.NewFromInt(2000),
				TaxRate:     decimal.Zero,
			},
		},
		TotalAmount: decimal.NewFromInt(17000),
		PaidAmount:  decimal.Zero,
	}
	if err := db.Create(&invoice).Error; err != nil {
		return fmt.Errorf("failed to seed invoice: %w", err)
	}

	return nil
}
