package importcsv

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/bistro/internal/http/respond"
	"github.com/MrJamesThe3rd/bistro/internal/importer"
	"github.com/MrJamesThe3rd/bistro/internal/importer/sheet"
)

const maxUpload = 10 << 20

type Handler struct {
	importSvc *importer.Service
}

func NewHandler(importSvc *importer.Service) *Handler {
	return &Handler{importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importSheet)
	r.Post("/preview", h.preview)
}

type rowDTO struct {
	Line     int             `json:"line"`
	Date     time.Time       `json:"date"`
	Article  string          `json:"article"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit,omitempty"`
	Price    int64           `json:"price"`
	Paid     bool            `json:"paid"`
}

type previewResponse struct {
	Profile string           `json:"profile"`
	Kind    sheet.Kind       `json:"kind"`
	Rows    []rowDTO         `json:"rows"`
	Skipped []sheet.RowError `json:"skipped"`
}

type importResponse struct {
	Profile   string           `json:"profile"`
	Kind      sheet.Kind       `json:"kind"`
	Purchases int              `json:"purchases"`
	Sales     int              `json:"sales"`
	Skipped   []sheet.RowError `json:"skipped"`
}

func formFile(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return nil, false
	}

	return file, true
}

// importSheet stores the rows of an uploaded spreadsheet. The optional kind
// field rejects a file holding the other kind of records.
func (h *Handler) importSheet(w http.ResponseWriter, r *http.Request) {
	file, ok := formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	kind := sheet.Kind(r.FormValue("kind"))
	if kind != "" && kind != sheet.KindPurchases && kind != sheet.KindSales {
		http.Error(w, "kind must be purchases or sales", http.StatusBadRequest)
		return
	}

	summary, err := h.importSvc.Import(r.Context(), kind, file)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, importResponse{
		Profile:   summary.Profile,
		Kind:      summary.Kind,
		Purchases: summary.Purchases,
		Sales:     summary.Sales,
		Skipped:   nonNil(summary.Skipped),
	})
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	file, ok := formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.importSvc.Parse(r.Context(), file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows := make([]rowDTO, len(result.Rows))
	for i, row := range result.Rows {
		rows[i] = rowDTO{
			Line:     row.Line,
			Date:     row.Date,
			Article:  row.Article,
			Quantity: row.Quantity,
			Unit:     row.Unit,
			Price:    row.Price,
			Paid:     row.Paid,
		}
	}

	respond.JSON(w, http.StatusOK, previewResponse{
		Profile: result.Profile,
		Kind:    result.Kind,
		Rows:    rows,
		Skipped: nonNil(result.Skipped),
	})
}

func nonNil(errs []sheet.RowError) []sheet.RowError {
	if errs == nil {
		return []sheet.RowError{}
	}

	return errs
}
