package docgen

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ObjectStore is the durable storage contract consumed by the pipeline.
// Implementations live in the infrastructure layer.
type ObjectStore interface {
	// Upload writes the object and returns its stored path.
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
	// PublicURL returns the durable retrieval URL for a stored path.
	PublicURL(path string) string
}

// ArtifactRef is the retrievable reference to one generated document.
type ArtifactRef struct {
	StoragePath string    `json:"storage_path"`
	PublicURL   string    `json:"public_url"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Pipeline drives one invoice document generation: totals, optional payment
// QR, composition, PDF conversion and upload. Steps run strictly in order;
// each consumes the previous step's output.
//
// The pipeline holds no mutable state and performs no de-duplication:
// concurrent generations for the same invoice produce distinct artifacts at
// distinct paths. Preventing duplicate user-triggered runs is the caller's
// job.
type Pipeline struct {
	store     ObjectStore
	converter Converter

	// encodeQR is swappable so tests can force encoding failures.
	encodeQR func(*entity.Invoice, decimal.Decimal, int) (PaymentQR, error)
	now      func() time.Time
}

// NewPipeline creates a generation pipeline over the given store.
func NewPipeline(store ObjectStore) *Pipeline {
	return &Pipeline{
		store:     store,
		converter: NewPDFConverter(),
		encodeQR:  EncodePaymentQR,
		now:       time.Now,
	}
}

// Generate produces and persists one invoice document, returning its
// reference. Errors wrap ErrValidation, ErrRender or ErrStorage so callers
// can tell invalid data from transient persistence failures. Nothing is
// written to storage unless every prior step succeeded.
func (p *Pipeline) Generate(
	ctx context.Context,
	invoice *entity.Invoice,
	items []entity.InvoiceItem,
	branding *entity.SchoolBranding,
	schoolName string,
	opts GenerationOptions,
) (*ArtifactRef, error) {
	opts.Normalize()
	if err := p.validate(invoice, items, branding, opts); err != nil {
		return nil, err
	}

	totals := ComputeTotals(items, invoice.PaidAmount)

	// Payment QR failure is the one degraded path: log and render without
	// the payment image.
	var qr PaymentQR
	if opts.IncludePaymentQR {
		encoded, err := p.encodeQR(invoice, totals.Balance, DefaultQRSize)
		if err != nil {
			log.Printf("docgen: payment QR skipped for invoice %s: %v", invoice.ID, err)
		} else {
			qr = encoded
		}
	}

	generatedAt := p.now().UTC()
	def := ComposeDocument(invoice, branding, schoolName, qr, totals, opts, DensityFull, generatedAt)

	if err := ctx.Err(); err != nil {
		return nil, renderError(err)
	}
	pdfBytes, err := p.converter.Convert(ctx, def)
	if err != nil {
		if errors.Is(err, ErrRender) {
			return nil, err
		}
		return nil, renderError(err)
	}

	if err := ctx.Err(); err != nil {
		return nil, storageError(err)
	}
	path := ArtifactPath(invoice.SchoolID.String(), invoice.ID.String(), generatedAt)
	storedPath, err := p.store.Upload(ctx, path, pdfBytes, "application/pdf")
	if err != nil {
		return nil, storageError(err)
	}

	return &ArtifactRef{
		StoragePath: storedPath,
		PublicURL:   p.store.PublicURL(storedPath),
		ContentType: "application/pdf",
		SizeBytes:   int64(len(pdfBytes)),
		GeneratedAt: generatedAt,
	}, nil
}

func (p *Pipeline) validate(
	invoice *entity.Invoice,
	items []entity.InvoiceItem,
	branding *entity.SchoolBranding,
	opts GenerationOptions,
) error {
	if invoice == nil {
		return validationError("missing invoice")
	}
	if branding == nil {
		return validationError("missing school branding")
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	// Overpayment is a data-integrity error in the billing records, never
	// corrected silently here.
	if invoice.PaidAmount.GreaterThan(invoice.TotalAmount) {
		return validationError("invoice %s paid amount %s exceeds total %s",
			invoice.Number, invoice.PaidAmount.StringFixed(2), invoice.TotalAmount.StringFixed(2))
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return validationError("item %q has non-positive quantity %d", item.Description, item.Quantity)
		}
		if item.UnitPrice.IsNegative() {
			return validationError("item %q has negative unit price", item.Description)
		}
		if item.TaxRate.IsNegative() || item.TaxRate.GreaterThan(hundred) {
			return validationError("item %q has tax rate outside 0-100", item.Description)
		}
	}
	return nil
}

// ArtifactPath builds the deterministic, collision-resistant storage key for
// one generation. The nanosecond timestamp guarantees repeat generations
// never overwrite prior artifacts.
func ArtifactPath(schoolID, invoiceID string, generatedAt time.Time) string {
	return fmt.Sprintf("invoices/%s/invoice-%s-%d.pdf", schoolID, invoiceID, generatedAt.UnixNano())
}
