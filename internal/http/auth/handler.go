package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	auth *Authenticator
}

func NewHandler(auth *Authenticator) *Handler {
	return &Handler{auth: auth}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.unlock)
}

type unlockRequest struct {
	PIN string `json:"pin"`
}

type unlockResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	var req unlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, expiresAt, err := h.auth.Unlock(req.PIN)
	if err != nil {
		if errors.Is(err, ErrInvalidPIN) {
			http.Error(w, "invalid pin", http.StatusUnauthorized)
			return
		}

		slog.Error("failed to issue token", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(unlockResponse{Token: token, ExpiresAt: expiresAt}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
