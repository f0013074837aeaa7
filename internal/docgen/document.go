package docgen

import (
	"regexp"
	"strings"
	"time"

	"github.com/edupay/edupay-api/internal/domain/entity"
)

// DocumentDefinition is the self-contained styled description of one invoice
// document. It is produced by pure composition from its inputs; the same
// definition drives both the PDF converter and the interactive preview, so
// the two can never disagree.
type DocumentDefinition struct {
	Density   LayoutDensity `json:"density"`
	Page      PageGeometry  `json:"page"`
	Watermark Watermark     `json:"watermark"`

	Header  HeaderBlock   `json:"header"`
	BillTo  BillToBlock   `json:"bill_to"`
	Meta    MetaBlock     `json:"meta"`
	Items   []LineTotal   `json:"items"`
	Totals  TotalsBlock   `json:"totals"`
	Payment *PaymentBlock `json:"payment,omitempty"`
	Notes   string        `json:"notes,omitempty"`
	Terms   string        `json:"terms,omitempty"`
	Footer  *FooterBlock  `json:"footer,omitempty"`
}

// HeaderBlock is the branded document header.
type HeaderBlock struct {
	SchoolName     string `json:"school_name"`
	LogoURL        string `json:"logo_url,omitempty"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// BillToBlock identifies the billed party.
type BillToBlock struct {
	Name        string `json:"name"`
	AdmissionNo string `json:"admission_no,omitempty"`
	ClassName   string `json:"class_name,omitempty"`
	Guardian    string `json:"guardian,omitempty"`
}

// MetaBlock carries the invoice metadata row.
type MetaBlock struct {
	InvoiceID     string    `json:"invoice_id"`
	InvoiceNumber string    `json:"invoice_number"`
	IssueDate     time.Time `json:"issue_date"`
	DueDate       time.Time `json:"due_date"`
	Currency      string    `json:"currency"`
	BillingFor    string    `json:"billing_for,omitempty"`
}

// TotalsBlock is the rendered totals summary. ShowPayment controls whether
// the paid and balance rows appear (only when something has been paid).
type TotalsBlock struct {
	Subtotal    string `json:"subtotal"`
	TotalTax    string `json:"total_tax"`
	GrandTotal  string `json:"grand_total"`
	Paid        string `json:"paid,omitempty"`
	Balance     string `json:"balance,omitempty"`
	ShowPayment bool   `json:"show_payment"`
}

// PaymentBlock holds accepted payment methods, optional bank details and the
// embedded payment QR image.
type PaymentBlock struct {
	Methods     []string            `json:"methods,omitempty"`
	BankDetails *entity.BankDetails `json:"bank_details,omitempty"`
	QRPNG       []byte              `json:"qr_png,omitempty"`
	QRPayload   string              `json:"qr_payload,omitempty"`
}

// FooterBlock is the optional document footer.
type FooterBlock struct {
	Text              string    `json:"text,omitempty"`
	TaxRegistrationNo string    `json:"tax_registration_no,omitempty"`
	GeneratedAt       time.Time `json:"generated_at"`
	InvoiceID         string    `json:"invoice_id"`
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// sanitizeColor falls back to a neutral palette when branding carries a
// malformed hex color, rather than failing the render.
func sanitizeColor(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if hexColorPattern.MatchString(trimmed) {
		return trimmed
	}
	return fallback
}

// ComposeDocument combines branding, invoice data, computed totals and the
// optional payment QR into a single document definition. It performs no I/O
// and is deterministic for a fixed generatedAt, which lets the artifact
// pipeline and the preview renderer share it.
//
// The watermark is taken from opts alone, never from the invoice status.
func ComposeDocument(
	invoice *entity.Invoice,
	branding *entity.SchoolBranding,
	schoolName string,
	qr PaymentQR,
	totals Totals,
	opts GenerationOptions,
	density LayoutDensity,
	generatedAt time.Time,
) *DocumentDefinition {
	def := &DocumentDefinition{
		Density:   density,
		Page:      opts.Geometry(),
		Watermark: opts.Watermark,
		Header: HeaderBlock{
			SchoolName:     schoolName,
			PrimaryColor:   sanitizeColor(branding.PrimaryColor, "#1f2937"),
			SecondaryColor: sanitizeColor(branding.SecondaryColor, "#6b7280"),
		},
		Meta: MetaBlock{
			InvoiceID:     invoice.ID.String(),
			InvoiceNumber: invoice.Number,
			IssueDate:     invoice.IssueDate,
			DueDate:       invoice.DueDate,
			Currency:      invoice.Currency,
			BillingFor:    invoice.BillingFor,
		},
		Items: totals.Lines,
		Totals: TotalsBlock{
			Subtotal:    totals.Subtotal.StringFixed(2),
			TotalTax:    totals.TotalTax.StringFixed(2),
			GrandTotal:  totals.GrandTotal.StringFixed(2),
			ShowPayment: totals.Paid.IsPositive(),
		},
	}

	if branding.LogoURL != nil {
		def.Header.LogoURL = *branding.LogoURL
	}

	if invoice.Student != nil {
		def.BillTo = BillToBlock{
			Name:        invoice.Student.Name,
			AdmissionNo: invoice.Student.AdmissionNo,
		}
		if invoice.Student.ClassName != nil {
			def.BillTo.ClassName = *invoice.Student.ClassName
		}
		if invoice.Student.GuardianName != nil {
			def.BillTo.Guardian = *invoice.Student.GuardianName
		}
	}

	if def.Totals.ShowPayment {
		def.Totals.Paid = totals.Paid.StringFixed(2)
		def.Totals.Balance = totals.Balance.StringFixed(2)
	}

	// The payment block appears when the QR was requested and encoded, or
	// when branding lists accepted methods. A failed QR encode degrades to a
	// method-only block, or no block at all.
	if !qr.Empty() || len(branding.PaymentMethods) > 0 {
		def.Payment = &PaymentBlock{
			Methods:     branding.PaymentMethods,
			BankDetails: branding.BankDetails,
		}
		if !qr.Empty() {
			def.Payment.QRPNG = qr.PNG
			def.Payment.QRPayload = qr.Payload
		}
	}

	if invoice.Notes != nil {
		def.Notes = *invoice.Notes
	}
	def.Terms = branding.PaymentTerms

	if opts.IncludeFooter {
		def.Footer = &FooterBlock{
			Text:        branding.FooterText,
			GeneratedAt: generatedAt,
			InvoiceID:   invoice.ID.String(),
		}
		if branding.TaxRegistrationNo != nil {
			def.Footer.TaxRegistrationNo = *branding.TaxRegistrationNo
		}
	}

	return def
}

// WatermarkText returns the overlay text for the selected watermark state,
// empty for WatermarkNone.
func (d *DocumentDefinition) WatermarkText() string {
	if d.Watermark == WatermarkNone || d.Watermark == "" {
		return ""
	}
	return strings.ToUpper(string(d.Watermark))
}
