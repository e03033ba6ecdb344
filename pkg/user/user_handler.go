package user

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/centsible/centsible/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type UserDTO struct {
	Id          int       `json:"id"`
	Uid         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName,omitempty"`
	Role        string    `json:"role"`
	Currency    string    `json:"currency,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	currentUser, err := h.service.GetCurrentUser(r.Context())
	if err != nil {
		rest.WriteDomainError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, toDTO(currentUser))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var dto UserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", err.Error(), "")
		return
	}
	updated, err := h.service.UpdateUser(r.Context(), User{
		DisplayName: dto.DisplayName,
		Currency:    dto.Currency,
	})
	if err != nil {
		rest.WriteDomainError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, toDTO(updated))
}

// ListUsers is admin-only, enforced by RequireRole on the route.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		rest.WriteDomainError(w, err)
		return
	}
	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toDTO(u))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// DeleteUser is admin-only, enforced by RequireRole on the route.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", "invalid user id", "")
		return
	}
	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		if err == ErrUserNotFound {
			rest.WriteError(w, http.StatusNotFound, "not_found", "user not found", "")
			return
		}
		rest.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RequireRole gates a handler behind the role stored on the current user.
// The role comes from storage via the auth middleware, not from configuration
// constants.
func RequireRole(role Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		currentUser, err := CurrentUser(r.Context())
		if err != nil {
			rest.WriteError(w, http.StatusUnauthorized, "unauthenticated", "no user in request", "")
			return
		}
		if currentUser.Role != role {
			log.Debugf("user %d lacks role %s", currentUser.Id, role)
			rest.WriteError(w, http.StatusForbidden, "forbidden", "insufficient role", "")
			return
		}
		next(w, r)
	}
}

func toDTO(u User) UserDTO {
	return UserDTO{
		Id:          u.Id,
		Uid:         u.Uid,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		Currency:    u.Currency,
		CreatedAt:   u.CreatedAt,
	}
}
