package repository

import (
	"context"

	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/edupay/edupay-api/internal/domain/enum"
	"github.com/edupay/edupay-api/pkg/pagination"
	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice data operations.
// The document generation core only reads invoices; writes belong to the
// upstream billing workflows.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	List(ctx context.Context, schoolID uuid.UUID, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	ListForExport(ctx context.Context, schoolID uuid.UUID) ([]entity.Invoice, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.InvoiceStatus
	StudentID  *uuid.UUID
	SortBy     string
	SortOrder  string
}

// InvoiceItemRepository defines the interface for invoice item data operations
type InvoiceItemRepository interface {
	GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceItem, error)
}
