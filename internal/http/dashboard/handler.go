package dashboard

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/bistro/internal/dashboard"
	"github.com/MrJamesThe3rd/bistro/internal/export"
	"github.com/MrJamesThe3rd/bistro/internal/http/query"
	"github.com/MrJamesThe3rd/bistro/internal/http/respond"
	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/report"
)

type Handler struct {
	reports *report.Service
	history *dashboard.Service
	export  *export.Service
	now     func() time.Time
}

func NewHandler(reports *report.Service, history *dashboard.Service, exp *export.Service) *Handler {
	return &Handler{reports: reports, history: history, export: exp, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.totals)
	r.Get("/history", h.listHistory)
	r.Get("/history/by-period", h.byPeriod)
	r.Get("/history/download", h.download)
}

type totalsResponse struct {
	Period       period.Key `json:"month"`
	Label        string     `json:"label"`
	Revenue      int64      `json:"revenue"`
	Salaries     int64      `json:"salaries"`
	Maintenance  int64      `json:"maintenance"`
	Purchases    int64      `json:"purchases"`
	TotalExpense int64      `json:"total_expense"`
	Profit       int64      `json:"profit"`
	ProfitMargin string     `json:"profit_margin"`
	SaleCount    int        `json:"sale_count"`
}

func (h *Handler) totals(w http.ResponseWriter, r *http.Request) {
	asOf, err := query.AsOf(r, h.now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.reports.Totals(r.Context(), asOf)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	key := period.Of(asOf)

	respond.JSON(w, http.StatusOK, totalsResponse{
		Period:       key,
		Label:        key.Label(),
		Revenue:      t.Revenue,
		Salaries:     t.Salaries,
		Maintenance:  t.Maintenance,
		Purchases:    t.Purchases,
		TotalExpense: t.TotalExpense,
		Profit:       t.Profit,
		ProfitMargin: t.ProfitMargin.StringFixed(2),
		SaleCount:    t.SaleCount,
	})
}

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	points, err := h.history.History(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if points == nil {
		points = []*dashboard.HistoryPoint{}
	}

	respond.JSON(w, http.StatusOK, points)
}

func (h *Handler) byPeriod(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.history.ByPeriod(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if summaries == nil {
		summaries = []*dashboard.PeriodSummary{}
	}

	respond.JSON(w, http.StatusOK, summaries)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	points, err := h.history.History(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"dashboard_history_%s.json\"", h.now().Format("20060102")))

	if err := h.export.WriteHistory(w, points); err != nil {
		slog.Error("failed to write history", "error", err)
	}
}
