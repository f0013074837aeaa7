package database

import (
	"testing"

	"github.com/edupay/edupay-api/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&entity.School{},
		&entity.SchoolBranding{},
		&entity.Student{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedDefaultData(t *testing.T) {
	db := setupSeedTestDB(t)

	if err := SeedDefaultData(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var school entity.School
	if err := db.First(&school, "slug = ?", "demo-academy").Error; err != nil {
		t.Fatalf("seeded school not found by slug: %v", err)
	}
	if school.Name != "Demo Academy" {
		t.Errorf("school name = %q", school.Name)
	}

	var branding entity.SchoolBranding
	if err := db.First(&branding, "school_id = ?", school.ID).Error; err != nil {
		t.Fatalf("seeded branding not found: %v", err)
	}

	var invoice entity.Invoice
	if err := db.Preload("Items").First(&invoice, "school_id = ?", school.ID).Error; err != nil {
		t.Fatalf("seeded invoice not found: %v", err)
	}
	if invoice.Number != "INV-000001" {
		t.Errorf("invoice number = %q, want INV-000001", invoice.Number)
	}
	if len(invoice.Items) != 2 {
		t.Errorf("seeded invoice has %d items, want 2", len(invoice.Items))
	}
}

func TestSeedDefaultDataIsIdempotent(t *testing.T) {
	db := setupSeedTestDB(t)

	if err := SeedDefaultData(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedDefaultData(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var count int64
	if err := db.Model(&entity.School{}).Count(&count).Error; err != nil {
		t.Fatalf("count schools: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 seeded school, got %d", count)
	}
}
