package dashboard

import (
	"errors"
	"net/http"

	"github.com/centsible/centsible/internal/rest"
	"github.com/centsible/centsible/pkg/budget"
	"github.com/centsible/centsible/pkg/goal"
	"github.com/centsible/centsible/pkg/ledger"
	log "github.com/sirupsen/logrus"
)

type SummaryDTO struct {
	Balance     string                 `json:"balance"`
	Allocations []budget.AllocationDTO `json:"allocations"`
	Goals       []goal.GoalDTO         `json:"goals"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetSummary(r.Context())
	if err != nil {
		if errors.Is(err, ledger.ErrDataIntegrity) {
			log.Errorf("dashboard aggregation failed: %v", err)
			rest.WriteError(w, http.StatusInternalServerError, "data_integrity", err.Error(), "")
			return
		}
		rest.WriteDomainError(w, err)
		return
	}

	dto := SummaryDTO{
		Balance:     summary.Balance.StringFixed(2),
		Allocations: make([]budget.AllocationDTO, 0, len(summary.Allocations)),
		Goals:       make([]goal.GoalDTO, 0, len(summary.Goals)),
	}
	for _, a := range summary.Allocations {
		dto.Allocations = append(dto.Allocations, budget.ToDTO(a))
	}
	for _, g := range summary.Goals {
		dto.Goals = append(dto.Goals, goal.ToDTO(g))
	}
	rest.WriteJSON(w, http.StatusOK, dto)
}
