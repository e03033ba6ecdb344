package ledger

import (
	"errors"
	"net/http"
	"time"

	"github.com/centsible/centsible/internal/rest"
	"github.com/centsible/centsible/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

type BalanceDTO struct {
	Balance string `json:"balance"`
}

type PeriodSummaryDTO struct {
	TotalIncome  string `json:"totalIncome"`
	TotalExpense string `json:"totalExpense"`
	Net          string `json:"net"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.service.Balance(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, BalanceDTO{Balance: balance.StringFixed(2)})
}

func (h *Handler) GetCategorySummary(w http.ResponseWriter, r *http.Request) {
	txType := transaction.Type(r.URL.Query().Get("type"))
	if txType != transaction.TypeIncome && txType != transaction.TypeExpense {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", "type must be income or expense", "")
		return
	}

	totals, err := h.service.CategorySummary(r.Context(), txType)
	if err != nil {
		h.writeError(w, err)
		return
	}

	dto := make(map[string]string, len(totals))
	for category, total := range totals {
		dto[category] = total.StringFixed(2)
	}
	rest.WriteJSON(w, http.StatusOK, dto)
}

func (h *Handler) GetPeriodSummary(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse(transaction.DateLayout, r.URL.Query().Get("from"))
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", "invalid from date, expected YYYY-MM-DD", "")
		return
	}
	to, err := time.Parse(transaction.DateLayout, r.URL.Query().Get("to"))
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", "invalid to date, expected YYYY-MM-DD", "")
		return
	}

	summary, err := h.service.PeriodSummary(r.Context(), from, to)
	if err != nil {
		h.writeError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, PeriodSummaryDTO{
		TotalIncome:  summary.TotalIncome.StringFixed(2),
		TotalExpense: summary.TotalExpense.StringFixed(2),
		Net:          summary.Net.StringFixed(2),
	})
}

// writeError keeps the data-integrity case distinct: a corrupt stored row is
// a server-side fault and must never be silently dropped.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrDataIntegrity) {
		log.Errorf("ledger aggregation failed: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "data_integrity", err.Error(), "")
		return
	}
	rest.WriteDomainError(w, err)
}
