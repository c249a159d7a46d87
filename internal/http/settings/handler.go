package settings

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/bistro/internal/http/respond"
	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/settings"
)

type Handler struct {
	svc *settings.Service
}

func NewHandler(svc *settings.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.update)
}

type settingsResponse struct {
	SickAllowance int        `json:"sick_allowance"`
	LastResetDate time.Time  `json:"last_reset_date"`
	CurrentPeriod period.Key `json:"current_month"`
}

func toResponse(s *settings.Settings) settingsResponse {
	return settingsResponse{
		SickAllowance: s.SickAllowance,
		LastResetDate: s.LastResetDate,
		CurrentPeriod: s.CurrentPeriod,
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Get(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(s))
}

type updateRequest struct {
	SickAllowance int `json:"sick_allowance"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s, err := h.svc.Update(r.Context(), settings.UpdateParams{SickAllowance: req.SickAllowance})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(s))
}
