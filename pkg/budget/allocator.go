package budget

import (
	"github.com/centsible/centsible/internal/validation"
	"github.com/shopspring/decimal"
)

// percentSumTolerance absorbs rounding noise in user-entered percentages.
var percentSumTolerance = decimal.RequireFromString("0.01")

var oneHundred = decimal.NewFromInt(100)

// Allocate validates the percentage split and distributes total across the
// four categories. Sub-amounts are rounded half-up to cents; any residual
// cent left by rounding goes to the largest category so the parts always sum
// to total exactly. Residual placement is deterministic, never left to
// accumulation order.
func Allocate(total decimal.Decimal, pct Percentages) (Breakdown, error) {
	if total.IsNegative() {
		return Breakdown{}, validation.Failed("totalAmount", "must not be negative")
	}
	if total.Exponent() < -2 {
		return Breakdown{}, validation.Failed("totalAmount", "must have at most 2 decimal places")
	}

	parts := [4]decimal.Decimal{pct.Savings, pct.Necessities, pct.Wants, pct.Investments}
	names := [4]string{"savings", "necessities", "wants", "investments"}
	sum := decimal.Zero
	for i, p := range parts {
		if p.IsNegative() {
			return Breakdown{}, validation.Failed("percentages."+names[i], "must not be negative")
		}
		sum = sum.Add(p)
	}
	if sum.Sub(oneHundred).Abs().GreaterThan(percentSumTolerance) {
		return Breakdown{}, validation.Failed("percentages", "must sum to 100")
	}

	var amounts [4]decimal.Decimal
	for i, p := range parts {
		amounts[i] = total.Mul(p).Div(oneHundred).Round(2)
	}

	allocated := decimal.Zero
	for _, a := range amounts {
		allocated = allocated.Add(a)
	}
	residual := total.Sub(allocated)
	if !residual.IsZero() {
		largest := 0
		for i := 1; i < len(amounts); i++ {
			if amounts[i].GreaterThan(amounts[largest]) {
				largest = i
			}
		}
		amounts[largest] = amounts[largest].Add(residual)
	}

	return Breakdown{
		Savings:     amounts[0],
		Necessities: amounts[1],
		Wants:       amounts[2],
		Investments: amounts[3],
	}, nil
}
