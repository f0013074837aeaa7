package docgen

import (
	"github.com/edupay/edupay-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineTotal is the computed breakdown of one invoice item.
type LineTotal struct {
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Total       decimal.Decimal `json:"total"`
}

// Totals is the aggregate financial summary of an invoice. It is derived on
// every render and never stored, so it cannot go stale.
type Totals struct {
	Lines      []LineTotal     `json:"lines"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TotalTax   decimal.Decimal `json:"total_tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Paid       decimal.Decimal `json:"paid"`
	Balance    decimal.Decimal `json:"balance"`
}

// ComputeTotals calculates per-line tax and totals plus the aggregate
// subtotal, tax, grand total and outstanding balance.
//
// Rounding policy: tax is rounded to 2 decimal places per line before
// aggregation, matching currency display. The aggregates are sums of the
// rounded line values, so grand total always equals subtotal plus tax
// exactly at 2dp. Summing unrounded taxes and rounding once can differ from
// this by up to one minor unit per line; that discrepancy is accepted, not
// hidden.
func ComputeTotals(items []entity.InvoiceItem, paidAmount decimal.Decimal) Totals {
	totals := Totals{
		Subtotal:   decimal.Zero,
		TotalTax:   decimal.Zero,
		GrandTotal: decimal.Zero,
		Paid:       paidAmount.Round(2),
	}

	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		lineSubtotal := item.UnitPrice.Mul(qty).Round(2)
		taxAmount := lineSubtotal.Mul(item.TaxRate).Div(hundred).Round(2)

		line := LineTotal{
			Description: item.Description,
			Category:    item.Category,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			Subtotal:    lineSubtotal,
			TaxAmount:   taxAmount,
			Total:       lineSubtotal.Add(taxAmount),
		}
		totals.Lines = append(totals.Lines, line)
		totals.Subtotal = totals.Subtotal.Add(lineSubtotal)
		totals.TotalTax = totals.TotalTax.Add(taxAmount)
	}

	totals.GrandTotal = totals.Subtotal.Add(totals.TotalTax)
	totals.Balance = totals.GrandTotal.Sub(totals.Paid)
	return totals
}
