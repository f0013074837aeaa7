package docgen

import (
	"time"

	"github.com/edupay/edupay-api/internal/domain/entity"
)

// RenderPreview produces the compact card-layout variant of the invoice
// document for interactive display. It recomputes totals and resolves the
// watermark through the same code paths as Generate, so the preview always
// agrees with the artifact the user is about to produce.
//
// When the invoice or branding has not loaded yet it returns nil rather than
// a stale or default preview. Zero line items is a valid, empty document.
// No payment QR is encoded for previews; the payment block shows accepted
// methods only.
func RenderPreview(
	invoice *entity.Invoice,
	items []entity.InvoiceItem,
	branding *entity.SchoolBranding,
	schoolName string,
	opts GenerationOptions,
) (*DocumentDefinition, error) {
	if invoice == nil || branding == nil {
		return nil, nil
	}

	opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	totals := ComputeTotals(items, invoice.PaidAmount)
	def := ComposeDocument(invoice, branding, schoolName, PaymentQR{}, totals, opts, DensityCompact, time.Now().UTC())
	return def, nil
}
