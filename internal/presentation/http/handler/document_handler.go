package handler

import (
	"strconv"

	"github.com/edupay/edupay-api/internal/application/service"
	"github.com/edupay/edupay-api/internal/docgen"
	"github.com/edupay/edupay-api/internal/presentation/http/dto/request"
	"github.com/edupay/edupay-api/internal/presentation/http/dto/response"
	"github.com/edupay/edupay-api/internal/presentation/http/middleware"
	"github.com/edupay/edupay-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles document generation HTTP requests
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// optionsFromRequest merges the request body into default generation options.
func optionsFromRequest(req *request.GenerateDocumentRequest) docgen.GenerationOptions {
	opts := docgen.DefaultOptions()
	if req == nil {
		return opts
	}
	if req.Watermark != nil {
		opts.Watermark = docgen.Watermark(*req.Watermark)
	}
	if req.IncludePaymentQR != nil {
		opts.IncludePaymentQR = *req.IncludePaymentQR
	}
	if req.IncludeFooter != nil {
		opts.IncludeFooter = *req.IncludeFooter
	}
	if req.PageFormat != nil {
		opts.PageFormat = docgen.PageFormat(*req.PageFormat)
	}
	if req.Orientation != nil {
		opts.Orientation = docgen.Orientation(*req.Orientation)
	}
	return opts
}

// Preview handles rendering the compact document preview for an invoice
func (h *DocumentHandler) Preview(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.GenerateDocumentRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	def, err := h.documentService.Preview(c.Request.Context(), id, optionsFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Preview rendered successfully", def)
}

// Generate handles producing and persisting an invoice PDF document
func (h *DocumentHandler) Generate(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.GenerateDocumentRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	artifact, err := h.documentService.GenerateDocument(c.Request.Context(), id, optionsFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Document generated successfully", artifact)
}

// ListInvoiceArtifacts handles listing the generation history for an invoice
func (h *DocumentHandler) ListInvoiceArtifacts(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	artifacts, err := h.documentService.ListInvoiceArtifacts(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Artifacts retrieved successfully", artifacts)
}

// ListArtifacts handles listing all artifacts for the school in context
func (h *DocumentHandler) ListArtifacts(c *gin.Context) {
	schoolID := middleware.GetSchoolID(c)
	if schoolID == uuid.Nil {
		response.BadRequest(c, "School context required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	result, err := h.documentService.ListArtifacts(c.Request.Context(), schoolID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Artifacts retrieved successfully", result)
}

// Share handles emailing an artifact link to a recipient
func (h *DocumentHandler) Share(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid artifact ID")
		return
	}

	var req request.ShareArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.documentService.ShareArtifact(c.Request.Context(), id, req.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document shared successfully", nil)
}

// Download handles fetching an artifact to the server download directory
func (h *DocumentHandler) Download(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid artifact ID")
		return
	}

	localPath, err := h.documentService.DownloadArtifact(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document downloaded successfully", gin.H{"local_path": localPath})
}
