package advisor

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("should render all amounts with two decimal places", func(t *testing.T) {
		// given
		req := Request{
			Total:       decimal.RequireFromString("1000"),
			Savings:     decimal.RequireFromString("333.3"),
			Necessities: decimal.RequireFromString("333.3"),
			Wants:       decimal.RequireFromString("333.4"),
			Investments: decimal.Zero,
			Balance:     decimal.RequireFromString("120"),
			Currency:    "EUR",
		}

		// when
		prompt := BuildPrompt(req)

		// then
		assert.Contains(t, prompt, "EUR budget")
		assert.Contains(t, prompt, "- total: 1000.00")
		assert.Contains(t, prompt, "- savings: 333.30")
		assert.Contains(t, prompt, "- wants: 333.40")
		assert.Contains(t, prompt, "- investments: 0.00")
		assert.Contains(t, prompt, "balance is 120.00")
	})

	t.Run("should fall back to USD when currency is missing", func(t *testing.T) {
		// when
		prompt := BuildPrompt(Request{})

		// then
		assert.Contains(t, prompt, "USD budget")
	})
}
