package service

import (
	"context"

	"github.com/edupay/edupay-api/internal/docgen"
	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/edupay/edupay-api/internal/domain/repository"
	infraRepo "github.com/edupay/edupay-api/internal/infrastructure/repository"
	"github.com/edupay/edupay-api/pkg/apperror"
	"github.com/edupay/edupay-api/pkg/pagination"
	"github.com/google/uuid"
)

// InvoiceService handles invoice read operations
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	itemRepo    repository.InvoiceItemRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo repository.InvoiceRepository, itemRepo repository.InvoiceItemRepository) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo, itemRepo: itemRepo}
}

// ListInvoices lists invoices for the school in context
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	schoolID, ok := infraRepo.GetSchoolID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("School context required")
	}

	invoices, total, err := s.invoiceRepo.List(ctx, schoolID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// GetInvoice retrieves an invoice with its line items
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// GetInvoiceTotals computes the financial breakdown for an invoice.
// Totals are always derived from the line items, never read back from
// stored columns.
func (s *InvoiceService) GetInvoiceTotals(ctx context.Context, id uuid.UUID) (*docgen.Totals, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	items, err := s.itemRepo.GetByInvoiceID(ctx, id)
	if err != nil {
		return nil, err
	}

	totals := docgen.ComputeTotals(items, invoice.PaidAmount)
	return &totals, nil
}
