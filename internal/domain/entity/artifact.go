package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeneratedArtifact is one persisted binary document produced by a generation
// call. Artifacts are append-only: repeat generations for the same invoice
// insert new rows and write new storage objects, never overwrite prior ones.
type GeneratedArtifact struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SchoolID    uuid.UUID `gorm:"type:uuid;not null;index" json:"school_id"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;not null;index" json:"invoice_id"`
	StoragePath string    `gorm:"size:512;not null" json:"storage_path"`
	PublicURL   string    `gorm:"size:1024;not null" json:"public_url"`
	ContentType string    `gorm:"size:100;default:'application/pdf'" json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	GeneratedAt time.Time `gorm:"not null;index" json:"generated_at"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	School  School  `gorm:"foreignKey:SchoolID" json:"-"`
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new artifact record
func (a *GeneratedArtifact) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GeneratedArtifact model
func (GeneratedArtifact) TableName() string {
	return "generated_artifacts"
}
