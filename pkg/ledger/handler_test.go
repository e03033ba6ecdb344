package ledger

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/centsible/centsible/internal/rest"
	"github.com/centsible/centsible/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_GetBalance(t *testing.T) {
	t.Run("should return the balance with two decimal places", func(t *testing.T) {
		service, ctx, teardown := setup(t)
		defer teardown()
		handler := NewHandler(service)

		// given
		storeEntry(t, ctx, transaction.TypeIncome, "100.00", "salary", "2024-01-01")
		storeEntry(t, ctx, transaction.TypeExpense, "30.00", "groceries", "2024-01-02")
		storeEntry(t, ctx, transaction.TypeIncome, "50.00", "salary", "2024-02-01")

		// when
		req := httptest.NewRequest(http.MethodGet, "/api/ledger/balance", nil)
		w := httptest.NewRecorder()
		handler.GetBalance(w, req.WithContext(ctx))

		// then
		require.Equal(t, http.StatusOK, w.Code)
		var dto BalanceDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
		assert.Equal(t, "120.00", dto.Balance)
	})

	t.Run("should return 500 with data_integrity code for corrupt rows", func(t *testing.T) {
		service, ctx, teardown := setup(t)
		defer teardown()
		handler := NewHandler(service)

		// given
		storeEntry(t, ctx, "transfer", "10.00", "misc", "2024-01-01")

		// when
		req := httptest.NewRequest(http.MethodGet, "/api/ledger/balance", nil)
		w := httptest.NewRecorder()
		handler.GetBalance(w, req.WithContext(ctx))

		// then
		require.Equal(t, http.StatusInternalServerError, w.Code)
		var errResp rest.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
		assert.Equal(t, "data_integrity", errResp.Code)
	})
}

func TestHandler_GetCategorySummary(t *testing.T) {
	t.Run("should return totals per category", func(t *testing.T) {
		service, ctx, teardown := setup(t)
		defer teardown()
		handler := NewHandler(service)

		// given
		storeEntry(t, ctx, transaction.TypeExpense, "20.00", "groceries", "2024-01-01")
		storeEntry(t, ctx, transaction.TypeExpense, "15.00", "groceries", "2024-01-03")

		// when
		req := httptest.NewRequest(http.MethodGet, "/api/ledger/summary/category?type=expense", nil)
		w := httptest.NewRecorder()
		handler.GetCategorySummary(w, req.WithContext(ctx))

		// then
		require.Equal(t, http.StatusOK, w.Code)
		var totals map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&totals))
		assert.Equal(t, "35.00", totals["groceries"])
	})

	t.Run("should return 400 for an unknown type", func(t *testing.T) {
		service, ctx, teardown := setup(t)
		defer teardown()
		handler := NewHandler(service)

		// when
		req := httptest.NewRequest(http.MethodGet, "/api/ledger/summary/category?type=transfer", nil)
		w := httptest.NewRecorder()
		handler.GetCategorySummary(w, req.WithContext(ctx))

		// then
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetPeriodSummary(t *testing.T) {
	t.Run("should summarize the requested period", func(t *testing.T) {
		service, ctx, teardown := setup(t)
		defer teardown()
		handler := NewHandler(service)

		// given
		storeEntry(t, ctx, transaction.TypeIncome, "100.00", "salary", "2024-01-01")
		storeEntry(t, ctx, transaction.TypeExpense, "30.00", "groceries", "2024-01-02")
		storeEntry(t, ctx, transaction.TypeIncome, "50.00", "salary", "2024-02-01")

		// when
		req := httptest.NewRequest(http.MethodGet, "/api/ledger/summary/period?from=2024-01-01&to=2024-01-31", nil)
		w := httptest.NewRecorder()
		handler.GetPeriodSummary(w, req.WithContext(ctx))

		// then
		require.Equal(t, http.StatusOK, w.Code)
		var dto PeriodSummaryDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
		assert.Equal(t, "100.00", dto.TotalIncome)
		assert.Equal(t, "30.00", dto.TotalExpense)
		assert.Equal(t, "70.00", dto.Net)
	})

	t.Run("should return 400 when period bounds are missing", func(t *testing.T) {
		service, ctx, teardown := setup(t)
		defer teardown()
		handler := NewHandler(service)

		// when
		req := httptest.NewRequest(http.MethodGet, "/api/ledger/summary/period", nil)
		w := httptest.NewRecorder()
		handler.GetPeriodSummary(w, req.WithContext(ctx))

		// then
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
