package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/edupay/edupay-api/internal/docgen"
	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/edupay/edupay-api/internal/domain/repository"
	"github.com/edupay/edupay-api/internal/export"
	"github.com/edupay/edupay-api/pkg/apperror"
	"github.com/edupay/edupay-api/pkg/pagination"
	"github.com/google/uuid"
)

// DocumentService orchestrates invoice document generation, preview and
// distribution. It loads invoice data, runs the generation pipeline and
// records every produced artifact.
type DocumentService struct {
	pipeline     *docgen.Pipeline
	invoiceRepo  repository.InvoiceRepository
	itemRepo     repository.InvoiceItemRepository
	brandingRepo repository.BrandingRepository
	schoolRepo   repository.SchoolRepository
	artifactRepo repository.ArtifactRepository
	exporter     *export.Adapter
}

// NewDocumentService creates a new document service
func NewDocumentService(
	pipeline *docgen.Pipeline,
	invoiceRepo repository.InvoiceRepository,
	itemRepo repository.InvoiceItemRepository,
	brandingRepo repository.BrandingRepository,
	schoolRepo repository.SchoolRepository,
	artifactRepo repository.ArtifactRepository,
	exporter *export.Adapter,
) *DocumentService {
	return &DocumentService{
		pipeline:     pipeline,
		invoiceRepo:  invoiceRepo,
		itemRepo:     itemRepo,
		brandingRepo: brandingRepo,
		schoolRepo:   schoolRepo,
		artifactRepo: artifactRepo,
		exporter:     exporter,
	}
}

// loadDocumentInputs fetches everything one render needs: the invoice with
// items, the school and its branding.
func (s *DocumentService) loadDocumentInputs(ctx context.Context, invoiceID uuid.UUID) (*entity.Invoice, []entity.InvoiceItem, *entity.SchoolBranding, *entity.School, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if invoice == nil {
		return nil, nil, nil, nil, apperror.NewNotFoundError("Invoice")
	}

	items, err := s.itemRepo.GetByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	school, err := s.schoolRepo.GetByID(ctx, invoice.SchoolID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if school == nil {
		return nil, nil, nil, nil, apperror.NewNotFoundError("School")
	}

	branding, err := s.brandingRepo.GetBySchoolID(ctx, invoice.SchoolID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if branding == nil {
		return nil, nil, nil, nil, apperror.NewNotFoundError("School branding")
	}

	return invoice, items, branding, school, nil
}

// Preview renders the compact document layout for interactive display.
// No PDF is produced and nothing is stored.
func (s *DocumentService) Preview(ctx context.Context, invoiceID uuid.UUID, opts docgen.GenerationOptions) (*docgen.DocumentDefinition, error) {
	invoice, items, branding, school, err := s.loadDocumentInputs(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	def, err := docgen.RenderPreview(invoice, items, branding, school.Name, opts)
	if err != nil {
		return nil, translateDocgenError(err)
	}
	if def == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return def, nil
}

// GenerateDocument runs the full pipeline for an invoice and records the
// resulting artifact. Each call appends a new artifact; prior generations
// are never replaced.
func (s *DocumentService) GenerateDocument(ctx context.Context, invoiceID uuid.UUID, opts docgen.GenerationOptions) (*entity.GeneratedArtifact, error) {
	invoice, items, branding, school, err := s.loadDocumentInputs(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	ref, err := s.pipeline.Generate(ctx, invoice, items, branding, school.Name, opts)
	if err != nil {
		return nil, translateDocgenError(err)
	}

	artifact := &entity.GeneratedArtifact{
		SchoolID:    invoice.SchoolID,
		InvoiceID:   invoice.ID,
		StoragePath: ref.StoragePath,
		PublicURL:   ref.PublicURL,
		ContentType: ref.ContentType,
		SizeBytes:   ref.SizeBytes,
		GeneratedAt: ref.GeneratedAt,
	}
	if err := s.artifactRepo.Create(ctx, artifact); err != nil {
		return nil, err
	}

	return artifact, nil
}

// ListInvoiceArtifacts returns the generation history for an invoice,
// newest first.
func (s *DocumentService) ListInvoiceArtifacts(ctx context.Context, invoiceID uuid.UUID) ([]entity.GeneratedArtifact, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return s.artifactRepo.ListByInvoice(ctx, invoiceID)
}

// ListArtifacts returns all artifacts for the school, paginated
func (s *DocumentService) ListArtifacts(ctx context.Context, schoolID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.GeneratedArtifact], error) {
	artifacts, total, err := s.artifactRepo.List(ctx, schoolID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(artifacts, pag), nil
}

// ShareArtifact emails the artifact link to the recipient.
func (s *DocumentService) ShareArtifact(ctx context.Context, artifactID uuid.UUID, toEmail string) error {
	artifact, invoice, err := s.loadArtifactWithInvoice(ctx, artifactID)
	if err != nil {
		return err
	}

	school, err := s.schoolRepo.GetByID(ctx, artifact.SchoolID)
	if err != nil {
		return err
	}
	schoolName := ""
	if school != nil {
		schoolName = school.Name
	}

	if err := s.exporter.Share(toEmail, schoolName, invoice.Number, artifact.PublicURL); err != nil {
		if errors.Is(err, export.ErrShareUnavailable) {
			return apperror.NewAppError(503, "Sharing is not configured on this server")
		}
		return apperror.NewBadGatewayError("Failed to share document")
	}
	return nil
}

// DownloadArtifact fetches the artifact to the server download directory and
// returns the local path.
func (s *DocumentService) DownloadArtifact(ctx context.Context, artifactID uuid.UUID) (string, error) {
	artifact, invoice, err := s.loadArtifactWithInvoice(ctx, artifactID)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("invoice-%s-%d.pdf", invoice.Number, artifact.GeneratedAt.Unix())
	localPath, err := s.exporter.Download(ctx, artifact.PublicURL, fileName)
	if err != nil {
		return "", apperror.NewBadGatewayError("Failed to download document")
	}
	return localPath, nil
}

func (s *DocumentService) loadArtifactWithInvoice(ctx context.Context, artifactID uuid.UUID) (*entity.GeneratedArtifact, *entity.Invoice, error) {
	artifact, err := s.artifactRepo.GetByID(ctx, artifactID)
	if err != nil {
		return nil, nil, err
	}
	if artifact == nil {
		return nil, nil, apperror.NewNotFoundError("Artifact")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, artifact.InvoiceID)
	if err != nil {
		return nil, nil, err
	}
	if invoice == nil {
		return nil, nil, apperror.NewNotFoundError("Invoice")
	}

	return artifact, invoice, nil
}

// translateDocgenError maps pipeline stage errors onto HTTP-coded errors.
// Validation failures are the caller's data problem; render failures are
// ours; storage failures are the upstream object store's.
func translateDocgenError(err error) error {
	switch {
	case errors.Is(err, docgen.ErrValidation):
		return apperror.NewUnprocessableError(err.Error())
	case errors.Is(err, docgen.ErrStorage):
		return apperror.NewBadGatewayError("Document storage failed")
	case errors.Is(err, docgen.ErrRender):
		return apperror.NewAppError(500, "Document rendering failed")
	default:
		return err
	}
}
