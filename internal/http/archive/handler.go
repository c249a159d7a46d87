package archive

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bistro/internal/archive"
	"github.com/MrJamesThe3rd/bistro/internal/export"
	"github.com/MrJamesThe3rd/bistro/internal/http/query"
	"github.com/MrJamesThe3rd/bistro/internal/http/respond"
	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/report"
)

type Handler struct {
	svc         *archive.Service
	reports     *report.Service
	export      *export.Service
	workbookDir string
	now         func() time.Time
}

type Option func(*Handler)

// WithWorkbookDir makes Reset save the workbook of the closing month into dir
// before archiving it.
func WithWorkbookDir(dir string) Option {
	return func(h *Handler) {
		h.workbookDir = dir
	}
}

func NewHandler(svc *archive.Service, reports *report.Service, exp *export.Service, opts ...Option) *Handler {
	h := &Handler{svc: svc, reports: reports, export: exp, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Routes mounts the read-only archive endpoints and deletion. The reset itself
// is mounted separately through Reset so the router can guard it.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/reset/preview", h.preview)
	r.Get("/{id}", h.get)
	r.Get("/{id}/download", h.download)
	r.Delete("/{id}", h.delete)
}

type archiveSummary struct {
	ID         uuid.UUID  `json:"id"`
	Period     period.Key `json:"month"`
	Label      string     `json:"label"`
	Employees  int        `json:"employees"`
	Revenue    int64      `json:"revenue"`
	Expense    int64      `json:"expense"`
	Profit     int64      `json:"profit"`
	ArchivedAt time.Time  `json:"archived_at"`
}

func toSummary(a *archive.MonthlyArchive) archiveSummary {
	return archiveSummary{
		ID:         a.ID,
		Period:     a.Period,
		Label:      a.Period.Label(),
		Employees:  len(a.Employees),
		Revenue:    a.Revenues.Sales,
		Expense:    a.Expenses.Total,
		Profit:     a.Profit(),
		ArchivedAt: a.ArchivedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	archives, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]archiveSummary, len(archives))
	for i, a := range archives {
		resp[i] = toSummary(a)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, a)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"archive_%s.json\"", a.Period))

	if err := h.export.WriteArchive(w, a); err != nil {
		slog.Error("failed to write archive", "id", id, "error", err)
	}
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

type previewResponse struct {
	Period    period.Key `json:"month"`
	Label     string     `json:"label"`
	Employees int        `json:"employees"`
	Revenue   int64      `json:"revenue"`
	Salaries  int64      `json:"salaries"`
	Expense   int64      `json:"expense"`
	Profit    int64      `json:"profit"`
	SaleCount int        `json:"sale_count"`
}

// preview shows what a reset at ?date would archive without touching anything.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	asOf, err := query.AsOf(r, h.now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap, err := h.reports.Snapshot(r.Context(), asOf)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	key := period.Of(asOf)

	respond.JSON(w, http.StatusOK, previewResponse{
		Period:    key,
		Label:     key.Label(),
		Employees: len(snap.Employees),
		Revenue:   snap.Totals.Revenue,
		Salaries:  snap.Totals.Salaries,
		Expense:   snap.Totals.TotalExpense,
		Profit:    snap.Totals.Profit,
		SaleCount: snap.Totals.SaleCount,
	})
}

type resetResponse struct {
	Archive   archiveSummary `json:"archive"`
	NextMonth period.Key     `json:"next_month"`
	Workbook  string         `json:"workbook,omitempty"`
}

// Reset archives the period containing ?date (today by default) and starts the next one.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	asOf, err := query.AsOf(r, h.now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var workbook string

	if h.workbookDir != "" {
		_, file, err := h.export.SaveWorkbook(r.Context(), asOf, h.workbookDir)
		if err != nil {
			respond.Error(w, r, fmt.Errorf("saving workbook before reset: %w", err))
			return
		}

		workbook = filepath.Base(file)
	}

	result, err := h.svc.PerformMonthlyReset(r.Context(), asOf)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, resetResponse{
		Archive:   toSummary(result.Archive),
		NextMonth: result.Archive.Period.Next(),
		Workbook:  workbook,
	})
}
