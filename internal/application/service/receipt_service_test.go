package service

import (
	"strings"
	"testing"

	"github.com/edupay/edupay-api/internal/domain/entity"
)

func sampleReceipt() *entity.FeeReceipt {
	return &entity.FeeReceipt{
		Header: entity.FeeReceiptHeader{
			SchoolName: "Demo Academy",
			Phone:      "+254 700 000 000",
			TaxRegNo:   "P051234567X",
		},
		ReceiptNo: "RCT-1A2B3C4D",
		InvoiceNo: "INV-000042",
		Date:      "2026-02-10",
		Student:   "Amina Wanjiku",
		Term:      "Term 2 Fees",
		Items: []entity.FeeReceiptItem{
			{Description: "Tuition", Quantity: 1, UnitPrice: 1500.00, Total: 1500.00},
			{Description: "Activity Fee", Quantity: 2, UnitPrice: 100.00, Total: 230.00},
		},
		SubTotal: 1700.00,
		Tax:      30.00,
		Total:    1730.00,
		Paid:     1500.00,
		Balance:  230.00,
	}
}

func TestFormatFeeReceiptContainsCoreFields(t *testing.T) {
	out := string(FormatFeeReceipt(sampleReceipt()))

	for _, want := range []string{
		"Demo Academy",
		"Tax Reg: P051234567X",
		"RCT-1A2B3C4D",
		"INV-000042",
		"Amina Wanjiku",
		"Term 2 Fees",
		"1x Tuition",
		"2x Activity Fee",
		"@ 100.00 each",
		"1730.00",
		"Balance:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("receipt missing %q", want)
		}
	}
}

func TestFormatFeeReceiptOmitsZeroLines(t *testing.T) {
	r := sampleReceipt()
	r.Tax = 0
	r.Paid = 0
	r.Balance = 0

	out := string(FormatFeeReceipt(r))

	if strings.Contains(out, "Tax:") {
		t.Error("zero tax line should be omitted")
	}
	if strings.Contains(out, "Paid:") {
		t.Error("zero paid line should be omitted")
	}
	if strings.Contains(out, "Balance:") {
		t.Error("zero balance line should be omitted")
	}
}

func TestFormatFeeReceiptEndsWithCut(t *testing.T) {
	data := FormatFeeReceipt(sampleReceipt())
	if len(data) < 3 {
		t.Fatal("receipt too short")
	}
	tail := data[len(data)-3:]
	if tail[0] != 0x1D || tail[1] != 'V' || tail[2] != 0x00 {
		t.Errorf("receipt does not end with cut command, got % x", tail)
	}
}
