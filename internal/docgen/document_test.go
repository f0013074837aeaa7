package docgen

import (
	"testing"
	"time"

	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/edupay/edupay-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func testBranding() *entity.SchoolBranding {
	footer := "Greenfield Academy - PO Box 100"
	taxNo := "P051234567X"
	return &entity.SchoolBranding{
		PrimaryColor:      "#00467f",
		SecondaryColor:    "#646464",
		FooterText:        footer,
		PaymentTerms:      "Payable within 30 days.",
		TaxRegistrationNo: &taxNo,
		PaymentMethods:    entity.PaymentMethodTags{"M-Pesa", "Bank Transfer"},
	}
}

func composeFixture(t *testing.T, opts GenerationOptions, paid string) *DocumentDefinition {
	t.Helper()
	invoice := testInvoice(t)
	invoice.PaidAmount = dec(t, paid)
	totals := ComputeTotals(scenarioItems(t), invoice.PaidAmount)
	opts.Normalize()
	return ComposeDocument(invoice, testBranding(), "Greenfield Academy", PaymentQR{}, totals, opts, DensityFull, time.Unix(1700000000, 0).UTC())
}

func TestWatermarkFollowsOptionsNotStatus(t *testing.T) {
	invoice := testInvoice(t)
	invoice.Status = enum.InvoiceStatusPaid
	totals := ComputeTotals(scenarioItems(t), decimal.Zero)
	now := time.Now().UTC()

	for _, wm := range []Watermark{WatermarkNone, WatermarkDraft, WatermarkPaid, WatermarkOverdue, WatermarkCancelled} {
		opts := DefaultOptions()
		opts.Watermark = wm
		def := ComposeDocument(invoice, testBranding(), "Greenfield Academy", PaymentQR{}, totals, opts, DensityFull, now)
		if def.Watermark != wm {
			t.Errorf("watermark = %q for option %q; invoice status must not leak in", def.Watermark, wm)
		}
	}

	none := composeFixture(t, GenerationOptions{Watermark: WatermarkNone}, "0")
	if none.WatermarkText() != "" {
		t.Errorf("WatermarkNone overlay text = %q, want empty", none.WatermarkText())
	}
	overdue := composeFixture(t, GenerationOptions{Watermark: WatermarkOverdue}, "0")
	if overdue.WatermarkText() != "OVERDUE" {
		t.Errorf("overlay text = %q, want OVERDUE", overdue.WatermarkText())
	}
}

func TestTotalsBlockHidesPaymentRowsWhenUnpaid(t *testing.T) {
	def := composeFixture(t, DefaultOptions(), "0")
	if def.Totals.ShowPayment || def.Totals.Paid != "" || def.Totals.Balance != "" {
		t.Errorf("unpaid invoice should not show paid/balance rows: %+v", def.Totals)
	}

	paid := composeFixture(t, DefaultOptions(), "250.00")
	if !paid.Totals.ShowPayment {
		t.Fatal("partially paid invoice must show payment rows")
	}
	if paid.Totals.Paid != "250.00" || paid.Totals.Balance != "1480.00" {
		t.Errorf("paid/balance = %s/%s, want 250.00/1480.00", paid.Totals.Paid, paid.Totals.Balance)
	}
}

func TestPaymentBlockDegradesWithoutQR(t *testing.T) {
	def := composeFixture(t, DefaultOptions(), "0")
	if def.Payment == nil {
		t.Fatal("branding lists payment methods; block should exist")
	}
	if len(def.Payment.QRPNG) != 0 {
		t.Error("no QR was supplied; image must be absent")
	}

	// No methods and no QR: the whole block is omitted.
	branding := testBranding()
	branding.PaymentMethods = nil
	totals := ComputeTotals(scenarioItems(t), decimal.Zero)
	bare := ComposeDocument(testInvoice(t), branding, "Greenfield Academy", PaymentQR{}, totals, DefaultOptions(), DensityFull, time.Now().UTC())
	if bare.Payment != nil {
		t.Error("expected no payment block without methods or QR")
	}
}

func TestFooterHonoursIncludeFooter(t *testing.T) {
	withFooter := composeFixture(t, GenerationOptions{IncludeFooter: true}, "0")
	if withFooter.Footer == nil {
		t.Fatal("expected footer block")
	}
	if withFooter.Footer.TaxRegistrationNo != "P051234567X" {
		t.Errorf("tax reg no = %q", withFooter.Footer.TaxRegistrationNo)
	}
	if withFooter.Footer.InvoiceID == "" || withFooter.Footer.GeneratedAt.IsZero() {
		t.Error("footer must carry invoice id and generation timestamp")
	}

	without := composeFixture(t, GenerationOptions{IncludeFooter: false}, "0")
	if without.Footer != nil {
		t.Error("expected no footer block")
	}
}

func TestComposeSanitizesBadColors(t *testing.T) {
	branding := testBranding()
	branding.PrimaryColor = "blue; drop table"
	totals := ComputeTotals(nil, decimal.Zero)
	def := ComposeDocument(testInvoice(t), branding, "Greenfield Academy", PaymentQR{}, totals, DefaultOptions(), DensityFull, time.Now().UTC())
	if def.Header.PrimaryColor != "#1f2937" {
		t.Errorf("primary color = %q, want sanitized fallback", def.Header.PrimaryColor)
	}
}

func TestRenderPreviewMatchesGenerationTotals(t *testing.T) {
	invoice := testInvoice(t)
	invoice.PaidAmount = dec(t, "1730.00")
	items := scenarioItems(t)
	branding := testBranding()
	opts := DefaultOptions()
	opts.Watermark = WatermarkPaid

	preview, err := RenderPreview(invoice, items, branding, "Greenfield Academy", opts)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if preview == nil {
		t.Fatal("expected a preview definition")
	}
	if preview.Density != DensityCompact {
		t.Errorf("density = %q, want compact", preview.Density)
	}

	totals := ComputeTotals(items, invoice.PaidAmount)
	full := ComposeDocument(invoice, branding, "Greenfield Academy", PaymentQR{}, totals, opts, DensityFull, time.Now().UTC())

	if preview.Totals.GrandTotal != full.Totals.GrandTotal ||
		preview.Totals.Balance != full.Totals.Balance ||
		preview.Watermark != full.Watermark {
		t.Errorf("preview diverges from final document: %+v vs %+v", preview.Totals, full.Totals)
	}
}

func TestRenderPreviewNilWhenInputsMissing(t *testing.T) {
	branding := testBranding()

	def, err := RenderPreview(nil, nil, branding, "Greenfield Academy", DefaultOptions())
	if err != nil || def != nil {
		t.Errorf("missing invoice: got (%v, %v), want (nil, nil)", def, err)
	}

	def, err = RenderPreview(testInvoice(t), nil, nil, "Greenfield Academy", DefaultOptions())
	if err != nil || def != nil {
		t.Errorf("missing branding: got (%v, %v), want (nil, nil)", def, err)
	}
}

func TestRenderPreviewEmptyInvoiceSucceeds(t *testing.T) {
	def, err := RenderPreview(testInvoice(t), nil, testBranding(), "Greenfield Academy", DefaultOptions())
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if def == nil {
		t.Fatal("zero line items is a valid empty document, not a missing one")
	}
	if len(def.Items) != 0 || def.Totals.GrandTotal != "0.00" {
		t.Errorf("empty invoice definition = %d items, total %s", len(def.Items), def.Totals.GrandTotal)
	}
}
