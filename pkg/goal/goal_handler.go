package goal

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/centsible/centsible/internal/rest"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type GoalDTO struct {
	ID           int    `json:"id,omitempty"`
	Name         string `json:"name"`
	TargetAmount string `json:"targetAmount"`
	SavedAmount  string `json:"savedAmount,omitempty"`
	Progress     string `json:"progress,omitempty"`
	Deadline     string `json:"deadline,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	goal, ok := h.decode(w, r)
	if !ok {
		return
	}
	created, err := h.service.Create(r.Context(), goal)
	if err != nil {
		rest.WriteDomainError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, ToDTO(created))
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	goals, err := h.service.GetAll(r.Context())
	if err != nil {
		rest.WriteDomainError(w, err)
		return
	}
	dtos := make([]GoalDTO, 0, len(goals))
	for _, g := range goals {
		dtos = append(dtos, ToDTO(g))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathId(w, r)
	if !ok {
		return
	}
	goal, ok := h.decode(w, r)
	if !ok {
		return
	}
	goal.ID = id

	updated, err := h.service.Update(r.Context(), goal)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			rest.WriteError(w, http.StatusNotFound, "not_found", "goal not found", "")
			return
		}
		rest.WriteDomainError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ToDTO(updated))
}

func (h *Handler) AddContribution(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathId(w, r)
	if !ok {
		return
	}

	var dto struct {
		Amount string `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", err.Error(), "")
		return
	}
	amount, err := decimal.NewFromString(dto.Amount)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", "amount must be a decimal number", "")
		return
	}

	updated, err := h.service.AddContribution(r.Context(), id, amount)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			rest.WriteError(w, http.StatusNotFound, "not_found", "goal not found", "")
			return
		}
		rest.WriteDomainError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ToDTO(updated))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathId(w, r)
	if !ok {
		return
	}
	ok, err := h.service.Delete(r.Context(), id)
	if err != nil {
		rest.WriteDomainError(w, err)
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "not_found", "goal not found", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pathId(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", "invalid goal id", "")
		return 0, false
	}
	return id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (Goal, bool) {
	var dto GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", err.Error(), "")
		return Goal{}, false
	}
	target, err := decimal.NewFromString(dto.TargetAmount)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", "targetAmount must be a decimal number", "")
		return Goal{}, false
	}
	var deadline time.Time
	if dto.Deadline != "" {
		deadline, err = time.Parse("2006-01-02", dto.Deadline)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "validation_error", "invalid deadline, expected YYYY-MM-DD", "")
			return Goal{}, false
		}
	}
	return Goal{
		Name:         dto.Name,
		TargetAmount: target,
		Deadline:     deadline,
	}, true
}

func ToDTO(g Goal) GoalDTO {
	dto := GoalDTO{
		ID:           g.ID,
		Name:         g.Name,
		TargetAmount: g.TargetAmount.StringFixed(2),
		SavedAmount:  g.SavedAmount.StringFixed(2),
		Progress:     g.Progress().String(),
	}
	if !g.Deadline.IsZero() {
		dto.Deadline = g.Deadline.Format("2006-01-02")
	}
	return dto
}
