// Package respond writes JSON bodies and maps domain errors to status codes.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/bistro/internal/archive"
	"github.com/MrJamesThe3rd/bistro/internal/importer"
	"github.com/MrJamesThe3rd/bistro/internal/importer/sheet"
	"github.com/MrJamesThe3rd/bistro/internal/inventory"
	"github.com/MrJamesThe3rd/bistro/internal/maintenance"
	"github.com/MrJamesThe3rd/bistro/internal/matching"
	"github.com/MrJamesThe3rd/bistro/internal/personnel"
	"github.com/MrJamesThe3rd/bistro/internal/purchase"
	"github.com/MrJamesThe3rd/bistro/internal/sales"
	"github.com/MrJamesThe3rd/bistro/internal/validate"
)

var statuses = []struct {
	err    error
	status int
}{
	{personnel.ErrNotFound, http.StatusNotFound},
	{personnel.ErrPresenceNotFound, http.StatusNotFound},
	{purchase.ErrNotFound, http.StatusNotFound},
	{maintenance.ErrNotFound, http.StatusNotFound},
	{sales.ErrNotFound, http.StatusNotFound},
	{archive.ErrNotFound, http.StatusNotFound},
	{matching.ErrNotFound, http.StatusNotFound},
	{inventory.ErrStockItemNotFound, http.StatusNotFound},
	{inventory.ErrArticleNotFound, http.StatusNotFound},
	{personnel.ErrDuplicatePresence, http.StatusConflict},
	{personnel.ErrRemoved, http.StatusConflict},
	{inventory.ErrArticleExists, http.StatusConflict},
	{personnel.ErrInvalidStatus, http.StatusBadRequest},
	{sales.ErrNoLines, http.StatusBadRequest},
	{importer.ErrKindMismatch, http.StatusBadRequest},
	{sheet.ErrUnknownFormat, http.StatusBadRequest},
}

// Status returns the HTTP status for an error returned by a service.
func Status(err error) int {
	if validate.IsValidation(err) {
		return http.StatusBadRequest
	}

	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}

	return http.StatusInternalServerError
}

// Error writes err with its mapped status. Server errors are logged and their
// detail is not sent to the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "internal error", status)

		return
	}

	http.Error(w, err.Error(), status)
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
