package transaction

import (
	"time"

	"github.com/centsible/centsible/internal/validation"
	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Transaction is one ledger entry. Amount is always a non-negative magnitude
// with at most two fractional digits; the sign is derived from Type when
// aggregating, never stored.
type Transaction struct {
	ID          int
	Uid         string
	Amount      decimal.Decimal
	Type        Type
	Category    string
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const DateLayout = "2006-01-02"

// New validates raw user input and builds a Transaction ready for storage.
// A negative amount without an explicit type is normalized to an expense of
// the absolute magnitude; historical data imported from other tools often
// carries the sign instead of a type. A negative amount combined with an
// explicit type is rejected.
func New(rawAmount, rawType, category, rawDate, description string) (Transaction, error) {
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return Transaction{}, validation.Failed("amount", "must be a decimal number")
	}
	if amount.Exponent() < -2 {
		return Transaction{}, validation.Failed("amount", "must have at most 2 decimal places")
	}

	txType := Type(rawType)
	if amount.IsNegative() {
		if rawType != "" {
			return Transaction{}, validation.Failed("amount", "must be a non-negative magnitude")
		}
		txType = TypeExpense
		amount = amount.Abs()
	}
	if txType != TypeIncome && txType != TypeExpense {
		return Transaction{}, validation.Failed("type", "must be income or expense")
	}

	if category == "" {
		return Transaction{}, validation.Failed("category", "must not be empty")
	}

	date, err := time.Parse(DateLayout, rawDate)
	if err != nil {
		return Transaction{}, validation.Failed("date", "must be a date in YYYY-MM-DD format")
	}

	return Transaction{
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Date:        date,
		Description: description,
	}, nil
}

// CheckIntegrity verifies the stored-transaction invariants. Aggregation
// refuses to run over a transaction failing any of these instead of coercing
// it.
func (t Transaction) CheckIntegrity() error {
	if t.Amount.IsNegative() {
		return validation.Failed("amount", "stored amount is negative")
	}
	if t.Amount.Exponent() < -2 {
		return validation.Failed("amount", "stored amount has more than 2 decimal places")
	}
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return validation.Failed("type", "stored type is unknown")
	}
	return nil
}
