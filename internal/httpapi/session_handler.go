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

// SessionHandler serves the session resource.
type SessionHandler struct {
	sessions service.SessionService
}

// NewSessionHandler creates a session handler.
func NewSessionHandler(sessions service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// RegisterRoutes registers the session routes.
func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Post("/search", h.handleSearch)
		r.Get("/summary", h.handleSummary)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

// usernameParam reads the optional username query parameter. An absent or
// empty parameter selects the unassigned bucket, it is not a wildcard.
func usernameParam(r *http.Request) *string {
	username := r.URL.Query().Get("username")
	if username == "" {
		return nil
	}
	return &username
}

func sessionID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *SessionHandler) handleList(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.List(r.Context(), usernameParam(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, sessions)
}

func (h *SessionHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid session id")
		return
	}
	session, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, session)
}

func (h *SessionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req contract.Session
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.sessions.Create(r.Context(), req, usernameParam(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/sessions/%d", created.ID))
	respondJSON(w, r, http.StatusCreated, created)
}

func (h *SessionHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid session id")
		return
	}
	var req contract.Session
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.sessions.Update(r.Context(), id, req); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid session id")
		return
	}
	if err := h.sessions.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req contract.SessionSearch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	found, err := h.sessions.Search(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, found)
}

func (h *SessionHandler) handleSummary(w http.ResponseWriter, r *http.Request) {
	// The summary endpoint requires a username; this is a caller error,
	// not a not-found.
	result, err := h.sessions.Summarize(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}
