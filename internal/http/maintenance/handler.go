package maintenance

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bistro/internal/http/query"
	"github.com/MrJamesThe3rd/bistro/internal/http/respond"
	"github.com/MrJamesThe3rd/bistro/internal/maintenance"
	"github.com/MrJamesThe3rd/bistro/internal/period"
)

type Handler struct {
	svc *maintenance.Service
	now func() time.Time
}

func NewHandler(svc *maintenance.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/history", h.history)
	r.Delete("/{id}", h.delete)
}

type createRequest struct {
	Date        time.Time `json:"date"`
	Service     string    `json:"service"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
}

type maintenanceResponse struct {
	ID             uuid.UUID  `json:"id"`
	Date           time.Time  `json:"date"`
	Service        string     `json:"service"`
	Duration       string     `json:"duration,omitempty"`
	Description    string     `json:"description,omitempty"`
	Amount         int64      `json:"amount"`
	ArchivedPeriod period.Key `json:"archived_month,omitempty"`
	ArchivedAt     *time.Time `json:"archived_at,omitempty"`
}

func toResponse(m *maintenance.Maintenance) maintenanceResponse {
	return maintenanceResponse{
		ID:             m.ID,
		Date:           m.Date,
		Service:        m.Service,
		Duration:       m.Duration,
		Description:    m.Description,
		Amount:         m.Amount,
		ArchivedPeriod: m.ArchivedPeriod,
		ArchivedAt:     m.ArchivedAt,
	}
}

func toResponseList(records []*maintenance.Maintenance) []maintenanceResponse {
	resp := make([]maintenanceResponse, len(records))
	for i, m := range records {
		resp[i] = toResponse(m)
	}

	return resp
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.Create(r.Context(), maintenance.CreateParams{
		Date:        req.Date,
		Service:     req.Service,
		Duration:    req.Duration,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(m))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	month, err := query.Month(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.svc.List(r.Context(), month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(records))
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	month, err := query.Month(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.svc.History(r.Context(), month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(records))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type closeResponse struct {
	ArchivedPeriod period.Key `json:"archived_month"`
}

// Close moves the live maintenance records to history under the current month. It is
// mounted behind the confirmation PIN.
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	at, err := query.AsOf(r, h.now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	closed, err := h.svc.Close(r.Context(), at)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, closeResponse{ArchivedPeriod: closed})
}
