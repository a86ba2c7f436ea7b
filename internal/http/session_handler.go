package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fjod/go_pos/internal/domain"
	"github.com/fjod/go_pos/internal/session"
)

// SessionHandler binds the already-authenticated operator to this register.
// Credential checking happens in the login collaborator; this surface only
// receives its result.
type SessionHandler struct {
	store      session.Store
	registerID string
}

func NewSessionHandler(store session.Store, registerID string) *SessionHandler {
	return &SessionHandler{store: store, registerID: registerID}
}

type PutSessionRequestDTO struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *SessionHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req PutSessionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Username == "" {
		respondError(w, http.StatusBadRequest, "invalid_username", "username must not be empty")
		return
	}

	role := domain.Role(req.Role)
	if role != domain.RoleAdmin && role != domain.RoleCashier {
		respondError(w, http.StatusBadRequest, "invalid_role", "role must be admin or cashier")
		return
	}

	s := session.Session{
		Username:   req.Username,
		Role:       role,
		LoggedInAt: time.Now(),
	}
	if err := h.store.Save(r.Context(), h.registerID, s); err != nil {
		handleEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, s)
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.Get(r.Context(), h.registerID)
	if err != nil {
		handleEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, s)
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), h.registerID); err != nil {
		handleEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
