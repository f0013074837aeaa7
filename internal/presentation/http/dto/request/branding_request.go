package request

// BankDetailsPayload mirrors the bank block stored on branding records.
type BankDetailsPayload struct {
	BankName      string `json:"bank_name" binding:"required"`
	AccountName   string `json:"account_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	BranchCode    string `json:"branch_code"`
	SwiftCode     string `json:"swift_code"`
}

// UpdateBrandingRequest is the request body for updating school branding.
type UpdateBrandingRequest struct {
	PrimaryColor      *string             `json:"primary_color" binding:"omitempty,hexcolor"`
	SecondaryColor    *string             `json:"secondary_color" binding:"omitempty,hexcolor"`
	LogoURL           *string             `json:"logo_url" binding:"omitempty,url"`
	FooterText        *string             `json:"footer_text"`
	PaymentTerms      *string             `json:"payment_terms"`
	TaxRegistrationNo *string             `json:"tax_registration_no"`
	PaymentMethods    []string            `json:"payment_methods"`
	BankDetails       *BankDetailsPayload `json:"bank_details"`
}
