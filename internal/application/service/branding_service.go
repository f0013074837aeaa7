package service

import (
	"context"

	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/edupay/edupay-api/internal/domain/repository"
	infraRepo "github.com/edupay/edupay-api/internal/infrastructure/repository"
	"github.com/edupay/edupay-api/pkg/apperror"
)

// BrandingService handles school branding operations
type BrandingService struct {
	brandingRepo repository.BrandingRepository
}

// NewBrandingService creates a new branding service
func NewBrandingService(brandingRepo repository.BrandingRepository) *BrandingService {
	return &BrandingService{brandingRepo: brandingRepo}
}

// GetBranding retrieves the branding record for the school in context
func (s *BrandingService) GetBranding(ctx context.Context) (*entity.SchoolBranding, error) {
	schoolID, ok := infraRepo.GetSchoolID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("School context required")
	}

	branding, err := s.brandingRepo.GetBySchoolID(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	if branding == nil {
		return nil, apperror.NewNotFoundError("School branding")
	}
	return branding, nil
}

// UpdateBrandingInput represents the update branding input
type UpdateBrandingInput struct {
	PrimaryColor      *string
	SecondaryColor    *string
	LogoURL           *string
	FooterText        *string
	PaymentTerms      *string
	TaxRegistrationNo *string
	PaymentMethods    []string
	BankDetails       *entity.BankDetails
}

// UpdateBranding updates the branding record for the school in context,
// creating it if it does not exist yet
func (s *BrandingService) UpdateBranding(ctx context.Context, input *UpdateBrandingInput) (*entity.SchoolBranding, error) {
	schoolID, ok := infraRepo.GetSchoolID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("School context required")
	}

	branding, err := s.brandingRepo.GetBySchoolID(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	if branding == nil {
		branding = &entity.SchoolBranding{SchoolID: schoolID}
	}

	if input.PrimaryColor != nil {
		branding.PrimaryColor = *input.PrimaryColor
	}
	if input.SecondaryColor != nil {
		branding.SecondaryColor = *input.SecondaryColor
	}
	if input.LogoURL != nil {
		branding.LogoURL = input.LogoURL
	}
	if input.FooterText != nil {
		branding.FooterText = *input.FooterText
	}
	if input.PaymentTerms != nil {
		branding.PaymentTerms = *input.PaymentTerms
	}
	if input.TaxRegistrationNo != nil {
		branding.TaxRegistrationNo = input.TaxRegistrationNo
	}
	if input.PaymentMethods != nil {
		branding.PaymentMethods = entity.PaymentMethodTags(input.PaymentMethods)
	}
	if input.BankDetails != nil {
		branding.BankDetails = input.BankDetails
	}

	if err := s.brandingRepo.Upsert(ctx, branding); err != nil {
		return nil, err
	}

	return branding, nil
}
