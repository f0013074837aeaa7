package entity

import (
	"time"

	"github.com/edupay/edupay-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice represents a fee invoice issued to a student account.
// Invoices are created and mutated by the billing workflows; the document
// generation core treats them as read-only input.
type Invoice struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SchoolID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"school_id"`
	StudentID   *uuid.UUID         `gorm:"type:uuid;index" json:"student_id,omitempty"`
	Number      string             `gorm:"size:100;unique;not null" json:"number"`
	IssueDate   time.Time          `gorm:"type:date;not null" json:"issue_date"`
	DueDate     time.Time          `gorm:"type:date;not null" json:"due_date"`
	Currency    string             `gorm:"size:3;default:'KES'" json:"currency"`
	TotalAmount decimal.Decimal    `gorm:"type:decimal(18,2);default:0" json:"total_amount"`
	PaidAmount  decimal.Decimal    `gorm:"type:decimal(18,2);default:0" json:"paid_amount"`
	Status      enum.InvoiceStatus `gorm:"default:0" json:"status"`
	BillingFor  string             `gorm:"size:255" json:"billing_for"`
	Notes       *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	School  School        `gorm:"foreignKey:SchoolID" json:"-"`
	Student *Student      `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Items   []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem represents a single billable row on an invoice.
// Quantity and unit price are immutable once the invoice is issued.
type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Category    string          `gorm:"size:100" json:"category"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_price"`
	TaxRate     decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (ii *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if ii.ID == uuid.Nil {
		ii.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
