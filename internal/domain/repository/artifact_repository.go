package repository

import (
	"context"

	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/edupay/edupay-api/pkg/pagination"
	"github.com/google/uuid"
)

// ArtifactRepository defines the interface for generated artifact records.
// Artifacts are append-only: there is deliberately no Update or Delete.
type ArtifactRepository interface {
	Create(ctx context.Context, artifact *entity.GeneratedArtifact) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.GeneratedArtifact, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.GeneratedArtifact, error)
	List(ctx context.Context, schoolID uuid.UUID, params *pagination.PaginationParams) ([]entity.GeneratedArtifact, int64, error)
}
