package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolBranding holds the visual identity and payment presentation data for
// one school. There is exactly one branding record per school; generated
// documents read it, they never write it.
type SchoolBranding struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	SchoolID          uuid.UUID         `gorm:"type:uuid;unique;not null" json:"school_id"`
	PrimaryColor      string            `gorm:"size:7;default:'#1f2937'" json:"primary_color"`
	SecondaryColor    string            `gorm:"size:7;default:'#6b7280'" json:"secondary_color"`
	LogoURL           *string           `gorm:"size:512" json:"logo_url,omitempty"`
	FooterText        string            `gorm:"type:text" json:"footer_text"`
	PaymentTerms      string            `gorm:"type:text" json:"payment_terms"`
	TaxRegistrationNo *string           `gorm:"size:100" json:"tax_registration_no,omitempty"`
	PaymentMethods    PaymentMethodTags `gorm:"type:jsonb;serializer:json" json:"payment_methods"`
	BankDetails       *BankDetails      `gorm:"type:jsonb;serializer:json" json:"bank_details,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	DeletedAt         gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	School School `gorm:"foreignKey:SchoolID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new branding record
func (b *SchoolBranding) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SchoolBranding model
func (SchoolBranding) TableName() string {
	return "school_brandings"
}

// PaymentMethodTags is the list of accepted payment method labels
// (e.g. "M-Pesa", "Bank Transfer", "Cheque")
type PaymentMethodTags []string

// Scan implements the sql.Scanner interface for PaymentMethodTags
func (p *PaymentMethodTags) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan PaymentMethodTags: unsupported type")
	}

	return json.Unmarshal(bytes, p)
}

// Value implements the driver.Valuer interface for PaymentMethodTags
func (p PaymentMethodTags) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// BankDetails is the optional bank block printed on invoice documents
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	BranchCode    string `json:"branch_code,omitempty"`
	SwiftCode     string `json:"swift_code,omitempty"`
}

// Scan implements the sql.Scanner interface for BankDetails
func (b *BankDetails) Scan(value interface{}) error {
	if value == nil {
		*b = BankDetails{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan BankDetails: unsupported type")
	}

	return json.Unmarshal(bytes, b)
}

// Value implements the driver.Valuer interface for BankDetails
func (b BankDetails) Value() (driver.Value, error) {
	return json.Marshal(b)
}
