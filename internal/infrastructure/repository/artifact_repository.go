package repository

import (
	"context"
	"errors"

	"github.com/edupay/edupay-api/internal/domain/entity"
	domainRepo "github.com/edupay/edupay-api/internal/domain/repository"
	"github.com/edupay/edupay-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type artifactRepository struct {
	db *gorm.DB
}

// NewArtifactRepository creates a new generated artifact repository
func NewArtifactRepository(db *gorm.DB) domainRepo.ArtifactRepository {
	return &artifactRepository{db: db}
}

func (r *artifactRepository) Create(ctx context.Context, artifact *entity.GeneratedArtifact) error {
	return r.db.WithContext(ctx).Create(artifact).Error
}

func (r *artifactRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.GeneratedArtifact, error) {
	var artifact entity.GeneratedArtifact
	err := r.db.WithContext(ctx).First(&artifact, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &artifact, err
}

func (r *artifactRepository) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.GeneratedArtifact, error) {
	var artifacts []entity.GeneratedArtifact
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("generated_at DESC").
		Find(&artifacts).Error
	return artifacts, err
}

func (r *artifactRepository) List(ctx context.Context, schoolID uuid.UUID, params *pagination.PaginationParams) ([]entity.GeneratedArtifact, int64, error) {
	var artifacts []entity.GeneratedArtifact
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.GeneratedArtifact{})
	if schoolID != uuid.Nil {
		query = query.Where("school_id = ?", schoolID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("generated_at DESC").
		Find(&artifacts).Error

	return artifacts, total, err
}
