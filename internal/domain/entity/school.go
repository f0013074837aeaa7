package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// School represents a tenant school in the multitenant system
type School struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Branding *SchoolBranding `gorm:"foreignKey:SchoolID" json:"branding,omitempty"`
	Students []Student       `gorm:"foreignKey:SchoolID" json:"-"`
	Invoices []Invoice       `gorm:"foreignKey:SchoolID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new school
func (s *School) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the School model
func (School) TableName() string {
	return "schools"
}

// Student represents the billed party on a fee invoice
type Student struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SchoolID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"school_id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	AdmissionNo  string         `gorm:"size:100;not null" json:"admission_no"`
	ClassName    *string        `gorm:"size:100" json:"class_name,omitempty"`
	GuardianName *string        `gorm:"size:255" json:"guardian_name,omitempty"`
	Email        *string        `gorm:"size:255" json:"email,omitempty"`
	Phone        *string        `gorm:"size:50" json:"phone,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	School   School    `gorm:"foreignKey:SchoolID" json:"-"`
	Invoices []Invoice `gorm:"foreignKey:StudentID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new student
func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Student model
func (Student) TableName() string {
	return "students"
}
