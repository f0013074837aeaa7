package handler

import (
	"github.com/edupay/edupay-api/internal/application/service"
	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/edupay/edupay-api/internal/presentation/http/dto/request"
	"github.com/edupay/edupay-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// BrandingHandler handles school branding HTTP requests
type BrandingHandler struct {
	brandingService *service.BrandingService
}

// NewBrandingHandler creates a new branding handler
func NewBrandingHandler(brandingService *service.BrandingService) *BrandingHandler {
	return &BrandingHandler{brandingService: brandingService}
}

// Get handles retrieving the branding for the school in context
func (h *BrandingHandler) Get(c *gin.Context) {
	branding, err := h.brandingService.GetBranding(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branding retrieved successfully", branding)
}

// Update handles updating the branding for the school in context
func (h *BrandingHandler) Update(c *gin.Context) {
	var req request.UpdateBrandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateBrandingInput{
		PrimaryColor:      req.PrimaryColor,
		SecondaryColor:    req.SecondaryColor,
		LogoURL:           req.LogoURL,
		FooterText:        req.FooterText,
		PaymentTerms:      req.PaymentTerms,
		TaxRegistrationNo: req.TaxRegistrationNo,
		PaymentMethods:    req.PaymentMethods,
	}
	if req.BankDetails != nil {
		input.BankDetails = &entity.BankDetails{
			BankName:      req.BankDetails.BankName,
			AccountName:   req.BankDetails.AccountName,
			AccountNumber: req.BankDetails.AccountNumber,
			BranchCode:    req.BankDetails.BranchCode,
			SwiftCode:     req.BankDetails.SwiftCode,
		}
	}

	branding, err := h.brandingService.UpdateBranding(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branding updated successfully", branding)
}
