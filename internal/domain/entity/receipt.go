package entity

// FeeReceiptHeader holds the school header printed at the top of a counter receipt.
type FeeReceiptHeader struct {
	SchoolName string `json:"school_name"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	TaxRegNo   string `json:"tax_reg_no,omitempty"`
}

// FeeReceiptItem represents a single fee line on a counter receipt.
type FeeReceiptItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// FeeReceipt is a value object representing a printable fee receipt.
// It is NOT a database entity: it is composed from invoice data at print time.
type FeeReceipt struct {
	Header    FeeReceiptHeader `json:"header"`
	ReceiptNo string           `json:"receipt_no"`
	InvoiceNo string           `json:"invoice_no"`
	Date      string           `json:"date"`
	Student   string           `json:"student,omitempty"`
	Term      string           `json:"term,omitempty"`
	Items     []FeeReceiptItem `json:"items"`
	SubTotal  float64          `json:"sub_total"`
	Tax       float64          `json:"tax"`
	Total     float64          `json:"total"`
	Paid      float64          `json:"paid"`
	Balance   float64          `json:"balance"`
}
