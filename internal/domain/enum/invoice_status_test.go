package enum

import "testing"

func TestParseInvoiceStatus(t *testing.T) {
	tests := []struct {
		input string
		want  InvoiceStatus
	}{
		{"draft", InvoiceStatusDraft},
		{"Pending", InvoiceStatusPending},
		{"PAID", InvoiceStatusPaid},
		{"overdue", InvoiceStatusOverdue},
		{"Cancelled", InvoiceStatusCancelled},
	}

	for _, tt := range tests {
		got, err := ParseInvoiceStatus(tt.input)
		if err != nil {
			t.Errorf("ParseInvoiceStatus(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseInvoiceStatus(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseInvoiceStatusRejectsUnknown(t *testing.T) {
	if _, err := ParseInvoiceStatus("refunded"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestInvoiceStatusStringOutOfRange(t *testing.T) {
	if got := InvoiceStatus(99).String(); got != "Draft" {
		t.Errorf("out-of-range status String() = %q, want Draft", got)
	}
}
