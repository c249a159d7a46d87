package sales

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/bistro/internal/http/query"
	"github.com/MrJamesThe3rd/bistro/internal/http/respond"
	"github.com/MrJamesThe3rd/bistro/internal/inventory"
	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/sales"
)

type Handler struct {
	svc *sales.Service
	now func() time.Time
}

func NewHandler(svc *sales.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.record)
	r.Post("/preview", h.preview)
	r.Get("/", h.list)
	r.Get("/history", h.history)
	r.Delete("/{id}", h.delete)
}

type lineDTO struct {
	Article   string          `json:"article"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice int64           `json:"unit_price"`
}

func toLines(dtos []lineDTO) []sales.Line {
	lines := make([]sales.Line, len(dtos))
	for i, d := range dtos {
		lines[i] = sales.Line{Article: d.Article, Quantity: d.Quantity, UnitPrice: d.UnitPrice}
	}

	return lines
}

type recordRequest struct {
	Date  time.Time `json:"date"`
	Lines []lineDTO `json:"lines"`
}

type saleResponse struct {
	ID             uuid.UUID  `json:"id"`
	Date           time.Time  `json:"date"`
	Lines          []lineDTO  `json:"lines"`
	Total          int64      `json:"total"`
	ArchivedPeriod period.Key `json:"archived_month,omitempty"`
	ArchivedAt     *time.Time `json:"archived_at,omitempty"`
}

func toResponse(s *sales.Sale) saleResponse {
	lines := make([]lineDTO, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = lineDTO{Article: l.Article, Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}

	return saleResponse{
		ID:             s.ID,
		Date:           s.Date,
		Lines:          lines,
		Total:          s.Total,
		ArchivedPeriod: s.ArchivedPeriod,
		ArchivedAt:     s.ArchivedAt,
	}
}

func toResponseList(sold []*sales.Sale) []saleResponse {
	resp := make([]saleResponse, len(sold))
	for i, s := range sold {
		resp[i] = toResponse(s)
	}

	return resp
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s, err := h.svc.Record(r.Context(), sales.RecordParams{Date: req.Date, Lines: toLines(req.Lines)})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(s))
}

type previewRequest struct {
	Lines []lineDTO `json:"lines"`
}

type previewResponse struct {
	Total        int64                   `json:"total"`
	Requirements []inventory.Requirement `json:"requirements"`
	Sufficient   bool                    `json:"sufficient"`
}

// preview reports the stock a sale would consume without recording it.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lines := sales.CompleteLines(toLines(req.Lines))

	reqs, err := h.svc.Preview(r.Context(), lines)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := previewResponse{
		Total:        sales.Total(lines),
		Requirements: reqs,
		Sufficient:   true,
	}
	if resp.Requirements == nil {
		resp.Requirements = []inventory.Requirement{}
	}

	for _, req := range reqs {
		if !req.Sufficient {
			resp.Sufficient = false
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	month, err := query.Month(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sold, err := h.svc.List(r.Context(), month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(sold))
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	month, err := query.Month(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sold, err := h.svc.History(r.Context(), month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(sold))
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

// Close moves the live sales to history under the current month. It is
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
