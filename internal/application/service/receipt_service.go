package service

import (
	"context"
	"fmt"
	"log"

	"github.com/edupay/edupay-api/internal/docgen"
	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/edupay/edupay-api/internal/domain/repository"
	"github.com/edupay/edupay-api/pkg/apperror"
	"github.com/edupay/edupay-api/pkg/printer"
	"github.com/edupay/edupay-api/pkg/utils"
	"github.com/google/uuid"
)

// ReceiptService formats fee receipts and sends them to the counter printer.
type ReceiptService struct {
	printer      printer.Printer
	invoiceRepo  repository.InvoiceRepository
	itemRepo     repository.InvoiceItemRepository
	brandingRepo repository.BrandingRepository
	schoolRepo   repository.SchoolRepository
	printerType  string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	p printer.Printer,
	invoiceRepo repository.InvoiceRepository,
	itemRepo repository.InvoiceItemRepository,
	brandingRepo repository.BrandingRepository,
	schoolRepo repository.SchoolRepository,
	printerType string,
) *ReceiptService {
	return &ReceiptService{
		printer:      p,
		invoiceRepo:  invoiceRepo,
		itemRepo:     itemRepo,
		brandingRepo: brandingRepo,
		schoolRepo:   schoolRepo,
		printerType:  printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *ReceiptService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintInvoiceReceipt composes a fee receipt from an invoice and prints it.
// Returns the receipt data so the handler can return it as JSON when the
// printer is disabled.
func (s *ReceiptService) PrintInvoiceReceipt(ctx context.Context, invoiceID uuid.UUID) (*entity.FeeReceipt, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	receipt := s.composeReceipt(ctx, invoice)

	data := FormatFeeReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (invoice %s): %v", invoiceID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

func (s *ReceiptService) composeReceipt(ctx context.Context, invoice *entity.Invoice) *entity.FeeReceipt {
	receipt := &entity.FeeReceipt{
		ReceiptNo: utils.GenerateReceiptNo(),
		InvoiceNo: invoice.Number,
		Date:      invoice.IssueDate.Format("2006-01-02"),
		Term:      invoice.BillingFor,
	}

	if school, err := s.schoolRepo.GetByID(ctx, invoice.SchoolID); err == nil && school != nil {
		receipt.Header.SchoolName = school.Name
		if school.Address != nil {
			receipt.Header.Address = *school.Address
		}
		if school.Phone != nil {
			receipt.Header.Phone = *school.Phone
		}
	}
	if branding, err := s.brandingRepo.GetBySchoolID(ctx, invoice.SchoolID); err == nil && branding != nil {
		if branding.TaxRegistrationNo != nil {
			receipt.Header.TaxRegNo = *branding.TaxRegistrationNo
		}
	}
	if invoice.Student != nil {
		receipt.Student = invoice.Student.Name
	}

	totals := docgen.ComputeTotals(invoice.Items, invoice.PaidAmount)
	for _, line := range totals.Lines {
		receipt.Items = append(receipt.Items, entity.FeeReceiptItem{
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.InexactFloat64(),
			Total:       line.Total.InexactFloat64(),
		})
	}
	receipt.SubTotal = totals.Subtotal.InexactFloat64()
	receipt.Tax = totals.TotalTax.InexactFloat64()
	receipt.Total = totals.GrandTotal.InexactFloat64()
	receipt.Paid = totals.Paid.InexactFloat64()
	receipt.Balance = totals.Balance.InexactFloat64()

	return receipt
}

// TestPrint sends a test page to the printer.
func (s *ReceiptService) TestPrint() (*entity.FeeReceipt, error) {
	receipt := &entity.FeeReceipt{
		Header: entity.FeeReceiptHeader{
			SchoolName: "PRINTER TEST",
			Address:    "Test Address",
			Phone:      "+254 000 000 000",
		},
		ReceiptNo: utils.GenerateReceiptNo(),
		InvoiceNo: "TEST-001",
		Date:      "Test Date",
		Student:   "Test Student",
		Items: []entity.FeeReceiptItem{
			{Description: "Test Fee 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Description: "Test Fee 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		SubTotal: 20.00,
		Tax:      0.00,
		Total:    20.00,
		Paid:     20.00,
		Balance:  0.00,
	}

	data := FormatFeeReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// FormatFeeReceipt converts a FeeReceipt into ESC/POS bytes.
func FormatFeeReceipt(r *entity.FeeReceipt) []byte {
	doc := printer.NewReceipt(printer.Width58mm)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.SchoolName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TaxRegNo != "" {
		doc.TextF("Tax Reg: %s", r.Header.TaxRegNo)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Receipt info
	if r.ReceiptNo != "" {
		doc.KeyValue("Receipt:", r.ReceiptNo)
	}
	doc.KeyValue("Invoice:", r.InvoiceNo).
		KeyValue("Date:", r.Date)

	if r.Student != "" {
		doc.KeyValue("Student:", r.Student)
	}
	if r.Term != "" {
		doc.KeyValue("Billing:", r.Term)
	}

	doc.Separator('-')

	// Fee items
	for _, item := range r.Items {
		doc.FeeLine(item.Quantity, item.Description, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	if r.Tax > 0 {
		doc.KeyValue("Tax:", fmt.Sprintf("%.2f", r.Tax))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	if r.Paid > 0 {
		doc.KeyValue("Paid:", fmt.Sprintf("%.2f", r.Paid))
	}
	if r.Balance > 0 {
		doc.KeyValue("Balance:", fmt.Sprintf("%.2f", r.Balance))
	}

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		Cut()

	return doc.Bytes()
}
