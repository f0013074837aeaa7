package docgen

import (
	"testing"

	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func scenarioItems(t *testing.T) []entity.InvoiceItem {
	t.Helper()
	return []entity.InvoiceItem{
		{Description: "Tuition Fee", Quantity: 1, UnitPrice: dec(t, "1500.00"), TaxRate: dec(t, "0")},
		{Description: "Activity Fee", Quantity: 1, UnitPrice: dec(t, "200.00"), TaxRate: dec(t, "15")},
	}
}

func TestComputeTotalsScenario(t *testing.T) {
	totals := ComputeTotals(scenarioItems(t), decimal.Zero)

	if got, want := totals.Subtotal.StringFixed(2), "1700.00"; got != want {
		t.Errorf("subtotal = %s, want %s", got, want)
	}
	if got, want := totals.TotalTax.StringFixed(2), "30.00"; got != want {
		t.Errorf("total tax = %s, want %s", got, want)
	}
	if got, want := totals.GrandTotal.StringFixed(2), "1730.00"; got != want {
		t.Errorf("grand total = %s, want %s", got, want)
	}
	if got, want := totals.Balance.StringFixed(2), "1730.00"; got != want {
		t.Errorf("balance with no payment = %s, want %s", got, want)
	}
}

func TestComputeTotalsFullyPaid(t *testing.T) {
	totals := ComputeTotals(scenarioItems(t), dec(t, "1730.00"))

	if !totals.Balance.IsZero() {
		t.Errorf("balance = %s, want 0", totals.Balance)
	}
	if got, want := totals.Paid.StringFixed(2), "1730.00"; got != want {
		t.Errorf("paid = %s, want %s", got, want)
	}
}

func TestComputeTotalsGrandEqualsSubtotalPlusTax(t *testing.T) {
	cases := []struct {
		name  string
		items []entity.InvoiceItem
	}{
		{"single line", []entity.InvoiceItem{
			{Description: "Boarding", Quantity: 3, UnitPrice: dec(t, "33.33"), TaxRate: dec(t, "16")},
		}},
		{"awkward rounding", []entity.InvoiceItem{
			{Description: "A", Quantity: 1, UnitPrice: dec(t, "0.01"), TaxRate: dec(t, "7.5")},
			{Description: "B", Quantity: 7, UnitPrice: dec(t, "19.99"), TaxRate: dec(t, "12.5")},
			{Description: "C", Quantity: 2, UnitPrice: dec(t, "100.005"), TaxRate: dec(t, "16")},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := ComputeTotals(tc.items, decimal.Zero)
			sum := totals.Subtotal.Add(totals.TotalTax)
			if !totals.GrandTotal.Equal(sum) {
				t.Errorf("grand total %s != subtotal+tax %s", totals.GrandTotal, sum)
			}
			// Line sums must agree with the aggregates exactly.
			lineTax := decimal.Zero
			for _, line := range totals.Lines {
				lineTax = lineTax.Add(line.TaxAmount)
			}
			if !lineTax.Equal(totals.TotalTax) {
				t.Errorf("sum of line taxes %s != total tax %s", lineTax, totals.TotalTax)
			}
		})
	}
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	totals := ComputeTotals(nil, decimal.Zero)

	if !totals.Subtotal.IsZero() || !totals.TotalTax.IsZero() || !totals.GrandTotal.IsZero() {
		t.Errorf("empty invoice totals = %s/%s/%s, want all zero",
			totals.Subtotal, totals.TotalTax, totals.GrandTotal)
	}
	if len(totals.Lines) != 0 {
		t.Errorf("expected no lines, got %d", len(totals.Lines))
	}
}

func TestComputeTotalsDeterministic(t *testing.T) {
	items := scenarioItems(t)
	paid := dec(t, "250.00")

	first := ComputeTotals(items, paid)
	second := ComputeTotals(items, paid)

	if first.GrandTotal.String() != second.GrandTotal.String() ||
		first.Balance.String() != second.Balance.String() ||
		first.Subtotal.String() != second.Subtotal.String() {
		t.Errorf("repeated computation diverged: %+v vs %+v", first, second)
	}
	for i := range first.Lines {
		if first.Lines[i].TaxAmount.String() != second.Lines[i].TaxAmount.String() {
			t.Errorf("line %d tax diverged", i)
		}
	}
}

func TestComputeTotalsPerLineRounding(t *testing.T) {
	// 3 x 33.33 = 99.99; 16% tax = 15.9984, rounded per line to 16.00.
	items := []entity.InvoiceItem{
		{Description: "Boarding", Quantity: 3, UnitPrice: dec(t, "33.33"), TaxRate: dec(t, "16")},
	}
	totals := ComputeTotals(items, decimal.Zero)

	if got, want := totals.Lines[0].TaxAmount.StringFixed(2), "16.00"; got != want {
		t.Errorf("line tax = %s, want %s", got, want)
	}
	if got, want := totals.GrandTotal.StringFixed(2), "115.99"; got != want {
		t.Errorf("grand total = %s, want %s", got, want)
	}
}
