package docgen

import (
	"encoding/json"
	"fmt"

	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

// DefaultQRSize is the square pixel size of the payment QR image. The size
// and black-on-white palette are fixed for scan reliability.
const DefaultQRSize = 256

// PaymentDescriptor is the compact payload encoded into a payment QR code.
type PaymentDescriptor struct {
	InvoiceID     string `json:"invoice_id"`
	InvoiceNumber string `json:"invoice_number"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Description   string `json:"description"`
}

// PaymentQR is an encoded payment descriptor ready for embedding. The zero
// value means "no payment QR"; documents render without a payment block.
type PaymentQR struct {
	Payload string `json:"payload"`
	PNG     []byte `json:"png,omitempty"`
	Size    int    `json:"size"`
}

// Empty reports whether the QR carries no image.
func (q PaymentQR) Empty() bool {
	return len(q.PNG) == 0
}

// EncodePaymentQR serializes a minimal payment intent for the invoice and
// encodes it as a scannable QR PNG. The amount is the outstanding balance the
// payer is expected to settle.
//
// Callers must treat failure as non-fatal: the pipeline logs the error and
// generates the document without a payment block.
func EncodePaymentQR(invoice *entity.Invoice, amount decimal.Decimal, size int) (PaymentQR, error) {
	if invoice == nil {
		return PaymentQR{}, fmt.Errorf("%w: nil invoice", ErrEncoding)
	}
	if size <= 0 {
		size = DefaultQRSize
	}

	descriptor := PaymentDescriptor{
		InvoiceID:     invoice.ID.String(),
		InvoiceNumber: invoice.Number,
		Amount:        amount.StringFixed(2),
		Currency:      invoice.Currency,
		Description:   invoice.BillingFor,
	}

	payload, err := json.Marshal(descriptor)
	if err != nil {
		return PaymentQR{}, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, size)
	if err != nil {
		return PaymentQR{}, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	return PaymentQR{Payload: string(payload), PNG: png, Size: size}, nil
}

// DecodePaymentDescriptor parses a QR payload back into its descriptor.
// Payment apps on the scanning side do the equivalent of this.
func DecodePaymentDescriptor(payload string) (PaymentDescriptor, error) {
	var descriptor PaymentDescriptor
	if err := json.Unmarshal([]byte(payload), &descriptor); err != nil {
		return PaymentDescriptor{}, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return descriptor, nil
}
