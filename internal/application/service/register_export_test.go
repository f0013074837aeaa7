package service

import (
	"context"
	"testing"
	"time"

	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/edupay/edupay-api/internal/domain/enum"
	infraRepo "github.com/edupay/edupay-api/internal/infrastructure/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRegisterTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.School{}, &entity.Student{}, &entity.Invoice{}, &entity.InvoiceItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestExportInvoiceRegisterRowContent(t *testing.T) {
	db := setupRegisterTestDB(t)
	schoolID := uuid.New()

	student := entity.Student{
		SchoolID:    schoolID,
		Name:        "Amina Wanjiku",
		AdmissionNo: "ADM-0001",
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}

	issueDate := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	invoice := entity.Invoice{
		SchoolID:    schoolID,
		StudentID:   &student.ID,
		Number:      "INV-000042",
		IssueDate:   issueDate,
		DueDate:     issueDate.AddDate(0, 0, 30),
		Currency:    "KES",
		BillingFor:  "Term 2 Fees",
		Status:      enum.InvoiceStatusPending,
		PaidAmount:  decimal.NewFromInt(1500),
		TotalAmount: decimal.NewFromInt(1730),
		Items: []entity.InvoiceItem{
			{Description: "Tuition", Quantity: 1, UnitPrice: decimal.NewFromInt(1500), TaxRate: decimal.Zero},
			{Description: "Activity Fee", Quantity: 2, UnitPrice: decimal.NewFromInt(100), TaxRate: decimal.NewFromInt(15)},
		},
	}
	if err := db.Create(&invoice).Error; err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	// Invoice belonging to another school must not appear in the register.
	other := entity.Invoice{
		SchoolID:   uuid.New(),
		Number:     "INV-999999",
		IssueDate:  issueDate,
		DueDate:    issueDate,
		Currency:   "KES",
		BillingFor: "Other School Fees",
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("create other invoice: %v", err)
	}

	svc := NewRegisterExportService(
		infraRepo.NewInvoiceRepository(db),
		infraRepo.NewInvoiceItemRepository(db),
	)

	ctx := infraRepo.WithSchool(context.Background(), schoolID)
	buf, err := svc.ExportInvoiceRegister(ctx)
	if err != nil {
		t.Fatalf("export register: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Invoice Register")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one invoice row, got %d rows", len(rows))
	}

	for i, header := range registerHeaders {
		if rows[0][i] != header {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], header)
		}
	}

	want := []string{
		"INV-000042", "2026-02-10", "2026-03-12", "Amina Wanjiku", "Term 2 Fees",
		"Pending", "KES", "1700", "30", "1730", "1500", "230",
	}
	row := rows[1]
	if len(row) != len(want) {
		t.Fatalf("row has %d cells, want %d: %v", len(row), len(want), row)
	}
	for i, cell := range want {
		if row[i] != cell {
			t.Errorf("row[%d] (%s) = %q, want %q", i, registerHeaders[i], row[i], cell)
		}
	}
}

func TestExportInvoiceRegisterRequiresSchoolContext(t *testing.T) {
	db := setupRegisterTestDB(t)
	svc := NewRegisterExportService(
		infraRepo.NewInvoiceRepository(db),
		infraRepo.NewInvoiceItemRepository(db),
	)

	if _, err := svc.ExportInvoiceRegister(context.Background()); err == nil {
		t.Fatal("expected error without school context")
	}
}

func TestRegisterFileName(t *testing.T) {
	if got := RegisterFileName("demo-academy"); got != "invoice-register-demo-academy.xlsx" {
		t.Errorf("file name = %q", got)
	}
}
