package purchase

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/bistro/internal/http/query"
	"github.com/MrJamesThe3rd/bistro/internal/http/respond"
	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/purchase"
)

type Handler struct {
	svc *purchase.Service
	now func() time.Time
}

func NewHandler(svc *purchase.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/batch", h.createBatch)
	r.Get("/", h.list)
	r.Get("/history", h.history)
	r.Patch("/{id}/paid", h.setPaid)
	r.Delete("/{id}", h.delete)
}

type createRequest struct {
	Date     time.Time       `json:"date"`
	Article  string          `json:"article"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Amount   int64           `json:"amount"`
	Paid     bool            `json:"paid"`
}

func (c createRequest) params() purchase.CreateParams {
	return purchase.CreateParams{
		Date:     c.Date,
		Article:  c.Article,
		Quantity: c.Quantity,
		Unit:     c.Unit,
		Amount:   c.Amount,
		Paid:     c.Paid,
	}
}

type purchaseResponse struct {
	ID             uuid.UUID       `json:"id"`
	Date           time.Time       `json:"date"`
	Article        string          `json:"article"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit,omitempty"`
	Amount         int64           `json:"amount"`
	Paid           bool            `json:"paid"`
	ArchivedPeriod period.Key      `json:"archived_month,omitempty"`
	ArchivedAt     *time.Time      `json:"archived_at,omitempty"`
}

func toResponse(p *purchase.Purchase) purchaseResponse {
	return purchaseResponse{
		ID:             p.ID,
		Date:           p.Date,
		Article:        p.Article,
		Quantity:       p.Quantity,
		Unit:           p.Unit,
		Amount:         p.Amount,
		Paid:           p.Paid,
		ArchivedPeriod: p.ArchivedPeriod,
		ArchivedAt:     p.ArchivedAt,
	}
}

func toResponseList(purchases []*purchase.Purchase) []purchaseResponse {
	resp := make([]purchaseResponse, len(purchases))
	for i, p := range purchases {
		resp[i] = toResponse(p)
	}

	return resp
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), req.params())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(p))
}

type batchRequest struct {
	Purchases []createRequest `json:"purchases"`
}

func (h *Handler) createBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := make([]purchase.CreateParams, 0, len(req.Purchases))
	for _, p := range req.Purchases {
		params = append(params, p.params())
	}

	created, err := h.svc.CreateBatch(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponseList(created))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	month, err := query.Month(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	paid, err := query.Bool(r, "paid")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	purchases, err := h.svc.List(r.Context(), purchase.ListFilter{Period: month, Paid: paid})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(purchases))
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	month, err := query.Month(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	purchases, err := h.svc.History(r.Context(), month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(purchases))
}

type setPaidRequest struct {
	Paid bool `json:"paid"`
}

func (h *Handler) setPaid(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req setPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.SetPaid(r.Context(), id, req.Paid)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
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

// Close moves the live purchases to history under the current month. It is
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
