package importer

import (
	"errors"
	"io"

	"github.com/MrJamesThe3rd/bistro/internal/importer/sheet"
)

var ErrKindMismatch = errors.New("spreadsheet does not hold the requested records")

type Parser interface {
	Parse(r io.Reader) (*sheet.Result, error)
}

// Summary reports what an import stored.
type Summary struct {
	Kind      sheet.Kind       `json:"kind"`
	Profile   string           `json:"profile"`
	Purchases int              `json:"purchases"`
	Sales     int              `json:"sales"`
	Skipped   []sheet.RowError `json:"skipped"`
}
