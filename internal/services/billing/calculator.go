package billing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// LineInput is the computable part of a line item. Inputs are validated at
// the service boundary (quantity > 0, unit price >= 0, tax rate 0..100);
// the calculator itself never fails.
type LineInput struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal
}

// Totals aggregates an invoice's money fields. Total = Subtotal + TaxAmount;
// discounts are a stored field elsewhere and never computed here.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// LineAmount computes quantity * unitPrice * (1 + taxRate/100).
// No rounding is applied; formatting is a display concern.
func LineAmount(quantity, unitPrice, taxRate decimal.Decimal) decimal.Decimal {
	net := quantity.Mul(unitPrice)
	return net.Add(net.Mul(taxRate).Div(hundred))
}

// ComputeTotals folds line inputs into invoice-level aggregates. An empty
// slice yields all-zero totals.
func ComputeTotals(lines []LineInput) Totals {
	subtotal := decimal.Zero
	tax := decimal.Zero
	for _, line := range lines {
		net := line.Quantity.Mul(line.UnitPrice)
		subtotal = subtotal.Add(net)
		tax = tax.Add(net.Mul(line.TaxRate).Div(hundred))
	}
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal.Add(tax),
	}
}
