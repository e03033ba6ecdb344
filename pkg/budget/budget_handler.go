package budget

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/centsible/centsible/internal/rest"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type PercentagesDTO struct {
	Savings     decimal.Decimal `json:"savings"`
	Necessities decimal.Decimal `json:"necessities"`
	Wants       decimal.Decimal `json:"wants"`
	Investments decimal.Decimal `json:"investments"`
}

type AllocateRequestDTO struct {
	Category    string         `json:"category,omitempty"`
	TotalAmount string         `json:"totalAmount"`
	Period      string         `json:"period,omitempty"`
	Percentages PercentagesDTO `json:"percentages"`
}

type AllocationDTO struct {
	ID             int       `json:"id"`
	Category       string    `json:"category"`
	Amount         string    `json:"amount"`
	Period         string    `json:"period"`
	Savings        string    `json:"savings"`
	Necessities    string    `json:"necessities"`
	Wants          string    `json:"wants"`
	Investments    string    `json:"investments"`
	Recommendation string    `json:"recommendation,omitempty"`
	GeneratedAt    time.Time `json:"generatedAt"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Allocate(w http.ResponseWriter, r *http.Request) {
	log.Debug("Saving budget allocation")

	var dto AllocateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", err.Error(), "")
		return
	}

	total, err := decimal.NewFromString(dto.TotalAmount)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", "totalAmount must be a decimal number", "")
		return
	}

	category := dto.Category
	if category == "" {
		category = "overall"
	}

	allocation, err := h.service.Allocate(r.Context(), category, total, Period(dto.Period), Percentages{
		Savings:     dto.Percentages.Savings,
		Necessities: dto.Percentages.Necessities,
		Wants:       dto.Percentages.Wants,
		Investments: dto.Percentages.Investments,
	})
	if err != nil {
		rest.WriteDomainError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, ToDTO(allocation))
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	allocations, err := h.service.GetAll(r.Context())
	if err != nil {
		rest.WriteDomainError(w, err)
		return
	}

	dtos := make([]AllocationDTO, 0, len(allocations))
	for _, a := range allocations {
		dtos = append(dtos, ToDTO(a))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func ToDTO(a Allocation) AllocationDTO {
	return AllocationDTO{
		ID:             a.ID,
		Category:       a.Category,
		Amount:         a.Amount.StringFixed(2),
		Period:         string(a.Period),
		Savings:        a.Breakdown.Savings.StringFixed(2),
		Necessities:    a.Breakdown.Necessities.StringFixed(2),
		Wants:          a.Breakdown.Wants.StringFixed(2),
		Investments:    a.Breakdown.Investments.StringFixed(2),
		Recommendation: a.Recommendation,
		GeneratedAt:    a.GeneratedAt,
	}
}
