package handler

import (
	"fmt"
	"net/http"

	"github.com/edupay/edupay-api/internal/application/service"
	"github.com/edupay/edupay-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReceiptHandler handles counter receipt printing HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	exportService  *service.RegisterExportService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService, exportService *service.RegisterExportService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService, exportService: exportService}
}

// Status handles reporting printer connection status
func (h *ReceiptHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.receiptService.GetStatus())
}

// TestPrint handles sending a test page to the printer
func (h *ReceiptHandler) TestPrint(c *gin.Context) {
	receipt, err := h.receiptService.TestPrint()
	if err != nil {
		// Return the receipt data anyway so the client can render it
		response.Success(c, 200, "Printer unavailable, returning receipt data", receipt)
		return
	}
	response.OK(c, "Test receipt printed", receipt)
}

// PrintReceipt handles printing a fee receipt for an invoice
func (h *ReceiptHandler) PrintReceipt(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	receipt, err := h.receiptService.PrintInvoiceReceipt(c.Request.Context(), id)
	if err != nil {
		if receipt != nil {
			response.Success(c, 200, "Printer unavailable, returning receipt data", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", receipt)
}

// ExportRegister handles downloading the invoice register workbook
func (h *ReceiptHandler) ExportRegister(c *gin.Context) {
	buf, err := h.exportService.ExportInvoiceRegister(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	fileName := service.RegisterFileName(c.DefaultQuery("school", "export"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
