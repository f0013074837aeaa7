package repository

import (
	"context"
	"errors"

	"github.com/edupay/edupay-api/internal/domain/entity"
	domainRepo "github.com/edupay/edupay-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type brandingRepository struct {
	db *gorm.DB
}

// NewBrandingRepository creates a new school branding repository
func NewBrandingRepository(db *gorm.DB) domainRepo.BrandingRepository {
	return &brandingRepository{db: db}
}

func (r *brandingRepository) GetBySchoolID(ctx context.Context, schoolID uuid.UUID) (*entity.SchoolBranding, error) {
	var branding entity.SchoolBranding
	err := r.db.WithContext(ctx).First(&branding, "school_id = ?", schoolID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &branding, err
}

func (r *brandingRepository) Upsert(ctx context.Context, branding *entity.SchoolBranding) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "school_id"}},
			UpdateAll: true,
		}).
		Create(branding).Error
}

type schoolRepository struct {
	db *gorm.DB
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *gorm.DB) domainRepo.SchoolRepository {
	return &schoolRepository{db: db}
}

func (r *schoolRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.School, error) {
	var school entity.School
	err := r.db.WithContext(ctx).First(&school, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &school, err
}

func (r *schoolRepository) GetBySlug(ctx context.Context, slug string) (*entity.School, error) {
	var school entity.School
	err := r.db.WithContext(ctx).First(&school, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &school, err
}
