package docgen

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// Converter turns a document definition into binary document bytes. It is
// the only CPU-bound suspension point in the pipeline.
type Converter interface {
	Convert(ctx context.Context, def *DocumentDefinition) ([]byte, error)
}

// PDFConverter renders document definitions to PDF.
type PDFConverter struct{}

// NewPDFConverter creates a PDF converter.
func NewPDFConverter() *PDFConverter {
	return &PDFConverter{}
}

const (
	pageMargin   = 15.0
	qrSizeMM     = 32.0
	footerHeight = 24.0
)

// Convert renders the definition into a single styled PDF page sequence.
func (c *PDFConverter) Convert(ctx context.Context, def *DocumentDefinition) ([]byte, error) {
	if def == nil {
		return nil, renderError(fmt.Errorf("nil document definition"))
	}
	if err := ctx.Err(); err != nil {
		return nil, renderError(err)
	}

	orient := "P"
	if def.Page.Orientation == OrientationLandscape {
		orient = "L"
	}

	pdf := gofpdf.New(orient, "mm", string(def.Page.Format), "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin+footerHeight)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	// Watermark goes down first so all content sits above it.
	if text := def.WatermarkText(); text != "" {
		drawWatermark(pdf, text, pageW, pageH)
	}

	drawHeader(pdf, def, pageW)
	drawBillTo(pdf, def)
	drawItemsTable(pdf, def, pageW)
	drawTotals(pdf, def, pageW)
	if def.Payment != nil {
		drawPayment(pdf, def)
	}
	drawNotes(pdf, def)
	if def.Footer != nil {
		drawFooter(pdf, def, pageW, pageH)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, renderError(err)
	}
	return buf.Bytes(), nil
}

func drawWatermark(pdf *gofpdf.Fpdf, text string, pageW, pageH float64) {
	pdf.SetAlpha(0.08, "Normal")
	pdf.SetFont("Helvetica", "B", 92)
	pdf.SetTextColor(55, 65, 81)
	pdf.TransformBegin()
	pdf.TransformRotate(45, pageW/2, pageH/2)
	width := pdf.GetStringWidth(text)
	pdf.Text(pageW/2-width/2, pageH/2, text)
	pdf.TransformEnd()
	pdf.SetAlpha(1, "Normal")
}

func drawHeader(pdf *gofpdf.Fpdf, def *DocumentDefinition, pageW float64) {
	pr, pg, pb := hexToRGB(def.Header.PrimaryColor)

	pdf.SetFillColor(pr, pg, pb)
	pdf.Rect(0, 0, pageW, 26, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(pageMargin, 8)
	pdf.CellFormat(pageW/2, 10, def.Header.SchoolName, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(pageW/2, 5)
	pdf.CellFormat(pageW/2-pageMargin, 8, "INVOICE", "", 2, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(pageW/2-pageMargin, 6, def.Meta.InvoiceNumber, "", 2, "R", false, 0, "")

	sr, sg, sb := hexToRGB(def.Header.SecondaryColor)
	pdf.SetTextColor(sr, sg, sb)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(pageMargin, 30)
	pdf.CellFormat(0, 5, "Issued: "+def.Meta.IssueDate.Format("2006-01-02"), "", 2, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Due: "+def.Meta.DueDate.Format("2006-01-02"), "", 2, "L", false, 0, "")
	if def.Meta.BillingFor != "" {
		pdf.CellFormat(0, 5, def.Meta.BillingFor, "", 2, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func drawBillTo(pdf *gofpdf.Fpdf, def *DocumentDefinition) {
	if def.BillTo.Name == "" {
		return
	}
	pdf.SetTextColor(17, 24, 39)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Bill To", "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, def.BillTo.Name, "", 2, "L", false, 0, "")
	if def.BillTo.AdmissionNo != "" {
		pdf.CellFormat(0, 5, "Admission No: "+def.BillTo.AdmissionNo, "", 2, "L", false, 0, "")
	}
	if def.BillTo.ClassName != "" {
		pdf.CellFormat(0, 5, "Class: "+def.BillTo.ClassName, "", 2, "L", false, 0, "")
	}
	if def.BillTo.Guardian != "" {
		pdf.CellFormat(0, 5, "Guardian: "+def.BillTo.Guardian, "", 2, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func drawItemsTable(pdf *gofpdf.Fpdf, def *DocumentDefinition, pageW float64) {
	usable := pageW - 2*pageMargin
	descW := usable * 0.40
	qtyW := usable * 0.10
	priceW := usable * 0.18
	taxW := usable * 0.12
	totalW := usable * 0.20

	pr, pg, pb := hexToRGB(def.Header.PrimaryColor)
	pdf.SetFillColor(pr, pg, pb)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(descW, 7, "Description", "", 0, "L", true, 0, "")
	pdf.CellFormat(qtyW, 7, "Qty", "", 0, "C", true, 0, "")
	pdf.CellFormat(priceW, 7, "Unit Price", "", 0, "R", true, 0, "")
	pdf.CellFormat(taxW, 7, "Tax %", "", 0, "R", true, 0, "")
	pdf.CellFormat(totalW, 7, "Total", "", 1, "R", true, 0, "")

	pdf.SetTextColor(17, 24, 39)
	pdf.SetFont("Helvetica", "", 9)
	fill := false
	for _, line := range def.Items {
		pdf.SetFillColor(243, 244, 246)
		desc := line.Description
		if line.Category != "" {
			desc += " (" + line.Category + ")"
		}
		pdf.CellFormat(descW, 6, desc, "", 0, "L", fill, 0, "")
		pdf.CellFormat(qtyW, 6, strconv.Itoa(line.Quantity), "", 0, "C", fill, 0, "")
		pdf.CellFormat(priceW, 6, line.UnitPrice.StringFixed(2), "", 0, "R", fill, 0, "")
		pdf.CellFormat(taxW, 6, line.TaxRate.StringFixed(1), "", 0, "R", fill, 0, "")
		pdf.CellFormat(totalW, 6, line.Total.StringFixed(2), "", 1, "R", fill, 0, "")
		fill = !fill
	}
	pdf.Ln(2)
}

func drawTotals(pdf *gofpdf.Fpdf, def *DocumentDefinition, pageW float64) {
	usable := pageW - 2*pageMargin
	labelW := usable * 0.70
	valueW := usable * 0.30
	currency := def.Meta.Currency

	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(labelW, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(valueW, 6, currency+" "+value, "", 1, "R", false, 0, "")
	}

	row("Subtotal", def.Totals.Subtotal, false)
	row("Tax", def.Totals.TotalTax, false)
	row("Grand Total", def.Totals.GrandTotal, true)
	if def.Totals.ShowPayment {
		row("Paid", def.Totals.Paid, false)
		row("Balance Due", def.Totals.Balance, true)
	}
	pdf.Ln(4)
}

func drawPayment(pdf *gofpdf.Fpdf, def *DocumentDefinition) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Payment", "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)

	if len(def.Payment.Methods) > 0 {
		methods := ""
		for i, m := range def.Payment.Methods {
			if i > 0 {
				methods += ", "
			}
			methods += m
		}
		pdf.CellFormat(0, 5, "Accepted: "+methods, "", 2, "L", false, 0, "")
	}
	if bank := def.Payment.BankDetails; bank != nil {
		pdf.CellFormat(0, 5, fmt.Sprintf("%s - %s (%s)", bank.BankName, bank.AccountName, bank.AccountNumber), "", 2, "L", false, 0, "")
	}

	if len(def.Payment.QRPNG) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("payment-qr", opts, bytes.NewReader(def.Payment.QRPNG))
		pdf.ImageOptions("payment-qr", pageMargin, pdf.GetY()+2, qrSizeMM, qrSizeMM, false, opts, 0, "")
		pdf.SetY(pdf.GetY() + qrSizeMM + 4)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 4, "Scan to pay", "", 2, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func drawNotes(pdf *gofpdf.Fpdf, def *DocumentDefinition) {
	if def.Terms != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, 5, "Payment Terms", "", 2, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 4.5, def.Terms, "", "L", false)
		pdf.Ln(2)
	}
	if def.Notes != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, 5, "Notes", "", 2, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 4.5, def.Notes, "", "L", false)
	}
}

func drawFooter(pdf *gofpdf.Fpdf, def *DocumentDefinition, pageW, pageH float64) {
	pdf.SetY(pageH - footerHeight)
	pdf.SetDrawColor(229, 231, 235)
	pdf.Line(pageMargin, pdf.GetY(), pageW-pageMargin, pdf.GetY())
	pdf.Ln(2)

	pdf.SetTextColor(107, 114, 128)
	pdf.SetFont("Helvetica", "", 8)
	if def.Footer.Text != "" {
		pdf.CellFormat(0, 4, def.Footer.Text, "", 2, "C", false, 0, "")
	}
	if def.Footer.TaxRegistrationNo != "" {
		pdf.CellFormat(0, 4, "Tax Reg No: "+def.Footer.TaxRegistrationNo, "", 2, "C", false, 0, "")
	}
	generated := fmt.Sprintf("Generated %s | Invoice %s",
		def.Footer.GeneratedAt.Format("2006-01-02 15:04 MST"), def.Footer.InvoiceID)
	pdf.CellFormat(0, 4, generated, "", 2, "C", false, 0, "")
}

// hexToRGB parses a sanitized #rrggbb color.
func hexToRGB(hex string) (int, int, int) {
	if len(hex) != 7 {
		return 31, 41, 55
	}
	r, err1 := strconv.ParseInt(hex[1:3], 16, 0)
	g, err2 := strconv.ParseInt(hex[3:5], 16, 0)
	b, err3 := strconv.ParseInt(hex[5:7], 16, 0)
	if err1 != nil || err2 != nil || err3 != nil {
		return 31, 41, 55
	}
	return int(r), int(g), int(b)
}
