package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/centsible/centsible/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// TransactionDTO carries amounts as strings so currency values survive the
// JSON round trip without binary floating point.
type TransactionDTO struct {
	ID          int    `json:"id,omitempty"`
	Uid         string `json:"uid,omitempty"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

type Handler struct {
	service     Service
	csvRenderer Renderer
}

func NewHandler(service Service, csvRenderer Renderer) *Handler {
	return &Handler{service, csvRenderer}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new transaction")

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", err.Error(), "")
		return
	}

	created, err := h.service.Create(r.Context(), dto.Amount, dto.Type, dto.Category, dto.Date, dto.Description)
	if err != nil {
		rest.WriteDomainError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, toDTO(created))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRange(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", err.Error(), "")
		return
	}

	txs, err := h.service.List(r.Context(), from, to)
	if err != nil {
		rest.WriteDomainError(w, err)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		csv, err := h.csvRenderer.RenderTransactions(txs)
		if err != nil {
			rest.WriteError(w, http.StatusInternalServerError, "internal", "could not render csv", "")
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		if _, err := w.Write([]byte(csv)); err != nil {
			log.Errorf("Error writing response: %v", err)
		}
		return
	}

	dtos := make([]TransactionDTO, 0, len(txs))
	for _, tx := range txs {
		dtos = append(dtos, toDTO(tx))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", "invalid transaction id", "")
		return
	}

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", err.Error(), "")
		return
	}

	updated, err := h.service.Update(r.Context(), id, dto.Amount, dto.Type, dto.Category, dto.Date, dto.Description)
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			rest.WriteError(w, http.StatusNotFound, "not_found", "transaction not found", "")
			return
		}
		rest.WriteDomainError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, toDTO(updated))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", "invalid transaction id", "")
		return
	}

	ok, err := h.service.Delete(r.Context(), id)
	if err != nil {
		rest.WriteDomainError(w, err)
		return
	}
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "not_found", "transaction not found", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseRange(r *http.Request) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err = time.Parse(DateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid from date, expected YYYY-MM-DD")
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err = time.Parse(DateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid to date, expected YYYY-MM-DD")
		}
	}
	return from, to, nil
}

func toDTO(tx Transaction) TransactionDTO {
	return TransactionDTO{
		ID:          tx.ID,
		Uid:         tx.Uid,
		Amount:      tx.Amount.StringFixed(2),
		Type:        string(tx.Type),
		Category:    tx.Category,
		Date:        tx.Date.Format(DateLayout),
		Description: tx.Description,
	}
}
