package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nlohrer/practice-tracker/internal/contract"
	"github.com/nlohrer/practice-tracker/internal/service"
)

// UserHandler serves the user resource.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a user handler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// RegisterRoutes registers the user routes.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Delete("/{id}", h.handleDelete)
	})
}

func userID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *UserHandler) handleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, users)
}

func (h *UserHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid user id")
		return
	}
	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, user)
}

func (h *UserHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req contract.User
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.users.Create(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", created.ID))
	respondJSON(w, r, http.StatusCreated, created)
}

func (h *UserHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := h.users.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
