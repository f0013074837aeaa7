package request

// GenerateDocumentRequest is the request body for generating or previewing
// an invoice document. All fields are optional; defaults apply.
type GenerateDocumentRequest struct {
	Watermark        *string `json:"watermark" binding:"omitempty,oneof=none draft overdue cancelled paid"`
	IncludePaymentQR *bool   `json:"include_payment_qr"`
	IncludeFooter    *bool   `json:"include_footer"`
	PageFormat       *string `json:"page_format" binding:"omitempty,oneof=A4 Letter"`
	Orientation      *string `json:"orientation" binding:"omitempty,oneof=portrait landscape"`
}

// ShareArtifactRequest is the request body for sharing a generated document.
type ShareArtifactRequest struct {
	Email string `json:"email" binding:"required,email"`
}
