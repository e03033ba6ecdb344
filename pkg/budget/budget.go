package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Percentages describes how a budget total is split across the four fixed
// allocation categories. Values are percent points, not fractions.
type Percentages struct {
	Savings     decimal.Decimal
	Necessities decimal.Decimal
	Wants       decimal.Decimal
	Investments decimal.Decimal
}

// Breakdown holds the computed sub-amounts. The four parts always sum to the
// allocated total exactly.
type Breakdown struct {
	Savings     decimal.Decimal
	Necessities decimal.Decimal
	Wants       decimal.Decimal
	Investments decimal.Decimal
}

func (b Breakdown) Sum() decimal.Decimal {
	return b.Savings.Add(b.Necessities).Add(b.Wants).Add(b.Investments)
}

// Allocation is one persisted budget row. At most one row exists per
// (user, category, period); saving again replaces it in place.
type Allocation struct {
	ID             int
	Category       string
	Amount         decimal.Decimal
	Period         Period
	Breakdown      Breakdown
	Recommendation string
	GeneratedAt    time.Time
}
