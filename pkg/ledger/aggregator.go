package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/centsible/centsible/pkg/transaction"
	"github.com/shopspring/decimal"
)

// ErrDataIntegrity marks a stored transaction that violates the ledger
// invariants (negative magnitude, more than two fractional digits, unknown
// type). Aggregation fails as a whole rather than coercing the entry.
var ErrDataIntegrity = errors.New("transaction violates ledger invariants")

// PeriodSummary is the signed-sum view of a date-bounded slice of the ledger.
type PeriodSummary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
}

// ComputeBalance sums income and subtracts expenses over the supplied
// transactions. An empty set yields zero, not an error.
func ComputeBalance(txs []transaction.Transaction) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, tx := range txs {
		if err := tx.CheckIntegrity(); err != nil {
			return decimal.Zero, integrityError(tx, err)
		}
		switch tx.Type {
		case transaction.TypeIncome:
			balance = balance.Add(tx.Amount)
		case transaction.TypeExpense:
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance, nil
}

// SummarizeByCategory totals magnitudes per category label for the given
// type. Matching is case-sensitive and categories without transactions are
// absent from the result, not zero-valued.
func SummarizeByCategory(txs []transaction.Transaction, txType transaction.Type) (map[string]decimal.Decimal, error) {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if err := tx.CheckIntegrity(); err != nil {
			return nil, integrityError(tx, err)
		}
		if tx.Type != txType {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals, nil
}

// SummarizeByPeriod applies the signed-sum logic to transactions dated within
// [from, to]. Bounds are inclusive and compared as calendar dates only.
func SummarizeByPeriod(txs []transaction.Transaction, from, to time.Time) (PeriodSummary, error) {
	summary := PeriodSummary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	fromDay := truncateToDay(from)
	toDay := truncateToDay(to)
	for _, tx := range txs {
		if err := tx.CheckIntegrity(); err != nil {
			return PeriodSummary{}, integrityError(tx, err)
		}
		day := truncateToDay(tx.Date)
		if day.Before(fromDay) || day.After(toDay) {
			continue
		}
		switch tx.Type {
		case transaction.TypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
		case transaction.TypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(tx.Amount)
		}
	}
	summary.Net = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func integrityError(tx transaction.Transaction, cause error) error {
	return fmt.Errorf("%w: transaction %s: %v", ErrDataIntegrity, tx.Uid, cause)
}
