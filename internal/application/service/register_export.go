package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/edupay/edupay-api/internal/docgen"
	"github.com/edupay/edupay-api/internal/domain/repository"
	infraRepo "github.com/edupay/edupay-api/internal/infrastructure/repository"
	"github.com/edupay/edupay-api/pkg/apperror"
	"github.com/xuri/excelize/v2"
)

// RegisterExportService produces the invoice register spreadsheet for a
// school's records office.
type RegisterExportService struct {
	invoiceRepo repository.InvoiceRepository
	itemRepo    repository.InvoiceItemRepository
}

// NewRegisterExportService creates a new register export service
func NewRegisterExportService(invoiceRepo repository.InvoiceRepository, itemRepo repository.InvoiceItemRepository) *RegisterExportService {
	return &RegisterExportService{invoiceRepo: invoiceRepo, itemRepo: itemRepo}
}

var registerHeaders = []string{
	"Invoice No", "Issue Date", "Due Date", "Student", "Billing For",
	"Status", "Currency", "Subtotal", "Tax", "Grand Total", "Paid", "Balance",
}

// ExportInvoiceRegister builds an XLSX workbook containing every invoice for
// the school in context, with derived totals per row. Totals are recomputed
// from line items so the register always matches the generated documents.
func (s *RegisterExportService) ExportInvoiceRegister(ctx context.Context) (*bytes.Buffer, error) {
	schoolID, ok := infraRepo.GetSchoolID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("School context required")
	}

	invoices, err := s.invoiceRepo.ListForExport(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Invoice Register"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range registerHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E5E7EB"}, Pattern: 1},
	})
	if err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(registerHeaders), 1)
		f.SetCellStyle(sheet, "A1", lastCell, headerStyle)
	}

	for i, invoice := range invoices {
		items, err := s.itemRepo.GetByInvoiceID(ctx, invoice.ID)
		if err != nil {
			return nil, err
		}
		totals := docgen.ComputeTotals(items, invoice.PaidAmount)

		student := ""
		if invoice.Student != nil {
			student = invoice.Student.Name
		}

		row := []interface{}{
			invoice.Number,
			invoice.IssueDate.Format("2006-01-02"),
			invoice.DueDate.Format("2006-01-02"),
			student,
			invoice.BillingFor,
			invoice.Status.String(),
			invoice.Currency,
			totals.Subtotal.InexactFloat64(),
			totals.TotalTax.InexactFloat64(),
			totals.GrandTotal.InexactFloat64(),
			totals.Paid.InexactFloat64(),
			totals.Balance.InexactFloat64(),
		}

		startCell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, startCell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write register workbook: %w", err)
	}
	return buf, nil
}

// RegisterFileName returns the download file name for a register export.
func RegisterFileName(schoolSlug string) string {
	return fmt.Sprintf("invoice-register-%s.xlsx", schoolSlug)
}
