package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/bistro/internal/archive"
	"github.com/MrJamesThe3rd/bistro/internal/dashboard"
)

// WriteArchive writes a single archive as indented JSON.
func (s *Service) WriteArchive(w io.Writer, a *archive.MonthlyArchive) error {
	return writeJSON(w, a)
}

// WriteHistory writes the dashboard history as indented JSON.
func (s *Service) WriteHistory(w io.Writer, points []*dashboard.HistoryPoint) error {
	if points == nil {
		points = []*dashboard.HistoryPoint{}
	}

	return writeJSON(w, points)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}

	return nil
}
