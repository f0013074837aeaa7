package repository

import (
	"context"

	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/google/uuid"
)

// BrandingRepository defines the interface for school branding data operations
type BrandingRepository interface {
	GetBySchoolID(ctx context.Context, schoolID uuid.UUID) (*entity.SchoolBranding, error)
	Upsert(ctx context.Context, branding *entity.SchoolBranding) error
}

// SchoolRepository defines the interface for school data operations
type SchoolRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.School, error)
	GetBySlug(ctx context.Context, slug string) (*entity.School, error)
}
