package goal

import (
	"time"

	"github.com/centsible/centsible/internal/validation"
	"github.com/shopspring/decimal"
)

// Goal is a savings target the user contributes towards over time.
type Goal struct {
	ID           int
	Name         string
	TargetAmount decimal.Decimal
	SavedAmount  decimal.Decimal
	// Deadline is optional; the zero time means no deadline.
	Deadline  time.Time
	CreatedAt time.Time
}

// Progress returns the saved fraction in [0, 1], capped at 1 once the target
// is reached.
func (g Goal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	progress := g.SavedAmount.Div(g.TargetAmount).Round(4)
	if progress.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return progress
}

// Validate checks the goal fields on create and update.
func (g Goal) Validate() error {
	if g.Name == "" {
		return validation.Failed("name", "must not be empty")
	}
	if !g.TargetAmount.IsPositive() {
		return validation.Failed("targetAmount", "must be positive")
	}
	if g.TargetAmount.Exponent() < -2 {
		return validation.Failed("targetAmount", "must have at most 2 decimal places")
	}
	return nil
}
