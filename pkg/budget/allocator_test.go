package budget

import (
	"testing"

	"github.com/centsible/centsible/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func percentages(savings, necessities, wants, investments string) Percentages {
	return Percentages{
		Savings:     decimal.RequireFromString(savings),
		Necessities: decimal.RequireFromString(necessities),
		Wants:       decimal.RequireFromString(wants),
		Investments: decimal.RequireFromString(investments),
	}
}

func TestAllocate(t *testing.T) {
	t.Run("should split total according to percentages", func(t *testing.T) {
		// given
		total := decimal.RequireFromString("1000.00")
		pct := percentages("50", "30", "20", "0")

		// when
		breakdown, err := Allocate(total, pct)

		// then
		require.NoError(t, err)
		assert.True(t, breakdown.Savings.Equal(decimal.RequireFromString("500.00")))
		assert.True(t, breakdown.Necessities.Equal(decimal.RequireFromString("300.00")))
		assert.True(t, breakdown.Wants.Equal(decimal.RequireFromString("200.00")))
		assert.True(t, breakdown.Investments.IsZero())
	})

	t.Run("should produce sub-amounts summing to total exactly", func(t *testing.T) {
		// given
		total := decimal.RequireFromString("1000.00")
		pct := percentages("33.33", "33.33", "33.34", "0")

		// when
		breakdown, err := Allocate(total, pct)

		// then
		require.NoError(t, err)
		assert.True(t, breakdown.Sum().Equal(total), "expected %s, got %s", total, breakdown.Sum())
		assert.True(t, breakdown.Wants.Equal(decimal.RequireFromString("333.40")))
	})

	t.Run("should absorb the rounding residual into the largest category", func(t *testing.T) {
		// given
		total := decimal.RequireFromString("100.01")
		pct := percentages("33.33", "33.33", "33.34", "0")

		// when
		breakdown, err := Allocate(total, pct)

		// then
		require.NoError(t, err)
		assert.True(t, breakdown.Sum().Equal(total), "expected %s, got %s", total, breakdown.Sum())
		assert.True(t, breakdown.Savings.Equal(decimal.RequireFromString("33.33")))
		assert.True(t, breakdown.Necessities.Equal(decimal.RequireFromString("33.33")))
		assert.True(t, breakdown.Wants.Equal(decimal.RequireFromString("33.35")))
	})

	t.Run("should sum exactly for many totals and splits", func(t *testing.T) {
		totals := []string{"0.01", "0.10", "1", "99.99", "123.45", "1000.00", "98765.43"}
		splits := []Percentages{
			percentages("33.33", "33.33", "33.34", "0"),
			percentages("25", "25", "25", "25"),
			percentages("10.5", "20.5", "30.5", "38.5"),
			percentages("100", "0", "0", "0"),
			percentages("1", "1", "1", "97"),
		}
		for _, rawTotal := range totals {
			for _, pct := range splits {
				total := decimal.RequireFromString(rawTotal)

				breakdown, err := Allocate(total, pct)

				require.NoError(t, err)
				assert.True(t, breakdown.Sum().Equal(total),
					"total %s split %+v: expected sum %s, got %s", rawTotal, pct, total, breakdown.Sum())
			}
		}
	})

	t.Run("should allocate zero total to all-zero breakdown", func(t *testing.T) {
		// when
		breakdown, err := Allocate(decimal.Zero, percentages("50", "30", "20", "0"))

		// then
		require.NoError(t, err)
		assert.True(t, breakdown.Sum().IsZero())
	})

	t.Run("should accept percentage sums within tolerance of 100", func(t *testing.T) {
		// given
		pct := percentages("33.33", "33.33", "33.33", "0") // sums to 99.99

		// when
		_, err := Allocate(decimal.RequireFromString("100.00"), pct)

		// then
		require.NoError(t, err)
	})

	t.Run("should reject percentage sums outside tolerance", func(t *testing.T) {
		testCases := []struct {
			name string
			pct  Percentages
		}{
			{"sum 99.5", percentages("33", "33", "33.5", "0")},
			{"sum 100.5", percentages("33.5", "33.5", "33.5", "0")},
			{"sum 0", percentages("0", "0", "0", "0")},
			{"sum 200", percentages("50", "50", "50", "50")},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				// when
				_, err := Allocate(decimal.RequireFromString("100.00"), tc.pct)

				// then
				var validationErr *validation.Error
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "percentages", validationErr.Field)
			})
		}
	})

	t.Run("should reject negative percentage even when sum is 100", func(t *testing.T) {
		// given
		pct := percentages("110", "-10", "0", "0")

		// when
		_, err := Allocate(decimal.RequireFromString("100.00"), pct)

		// then
		var validationErr *validation.Error
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "percentages.necessities", validationErr.Field)
	})

	t.Run("should reject negative total", func(t *testing.T) {
		// when
		_, err := Allocate(decimal.RequireFromString("-1"), percentages("50", "30", "20", "0"))

		// then
		var validationErr *validation.Error
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "totalAmount", validationErr.Field)
	})

	t.Run("should reject total with more than 2 decimal places", func(t *testing.T) {
		// when
		_, err := Allocate(decimal.RequireFromString("10.001"), percentages("50", "30", "20", "0"))

		// then
		var validationErr *validation.Error
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "totalAmount", validationErr.Field)
	})
}
