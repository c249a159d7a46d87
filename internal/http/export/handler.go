package export

import (
	"archive/zip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/bistro/internal/dashboard"
	"github.com/MrJamesThe3rd/bistro/internal/export"
	"github.com/MrJamesThe3rd/bistro/internal/http/respond"
	"github.com/MrJamesThe3rd/bistro/internal/period"
)

type Handler struct {
	svc     *export.Service
	history *dashboard.Service
	now     func() time.Time
}

func NewHandler(svc *export.Service, history *dashboard.Service) *Handler {
	return &Handler{svc: svc, history: history, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.metadata)
	r.Post("/download", h.download)
}

type exportRequest struct {
	Date *time.Time `json:"date,omitempty"`
}

func (h *Handler) asOf(r *http.Request) (time.Time, error) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return time.Time{}, err
	}

	if req.Date == nil {
		return h.now(), nil
	}

	return *req.Date, nil
}

type exportMetadataResponse struct {
	Month       period.Key `json:"month"`
	FileName    string     `json:"file_name"`
	Employees   int        `json:"employees"`
	Purchases   int        `json:"purchases"`
	Stock       int        `json:"stock"`
	Maintenance int        `json:"maintenance"`
	Sales       int        `json:"sales"`
	Articles    int        `json:"articles"`
	Summary     string     `json:"summary"`
}

func (h *Handler) metadata(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Collect(r.Context(), asOf)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, exportMetadataResponse{
		Month:       b.Period,
		FileName:    export.FileName(b.Period),
		Employees:   len(b.Employees),
		Purchases:   len(b.Purchases),
		Stock:       len(b.Stock),
		Maintenance: len(b.Maintenance),
		Sales:       len(b.Sales),
		Articles:    len(b.Articles),
		Summary:     h.svc.GenerateSummary(b),
	})
}

// download streams a zip holding the workbook, its text summary and the
// dashboard history.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	asOf, err := h.asOf(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Collect(r.Context(), asOf)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	points, err := h.history.History(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"export_%s.zip\"", b.Period))

	zipWriter := zip.NewWriter(w)
	defer zipWriter.Close()

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{export.FileName(b.Period), func(w io.Writer) error { return h.svc.WriteWorkbook(w, b) }},
		{"summary.txt", func(w io.Writer) error {
			_, err := io.WriteString(w, h.svc.GenerateSummary(b))
			return err
		}},
		{"history.json", func(w io.Writer) error { return h.svc.WriteHistory(w, points) }},
	}

	for _, f := range files {
		zf, err := zipWriter.Create(f.name)
		if err != nil {
			slog.Error("failed to create zip entry", "name", f.name, "error", err)
			return
		}

		if err := f.write(zf); err != nil {
			slog.Error("failed to write zip entry", "name", f.name, "error", err)
			return
		}
	}
}
