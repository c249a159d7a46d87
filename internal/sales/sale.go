package sales

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/bistro/internal/period"
)

var (
	ErrNotFound = errors.New("sale not found")
	ErrNoLines  = errors.New("sale has no complete line")
)

// Line is one article sold at a unit price.
type Line struct {
	Article   string          `json:"article"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice int64           `json:"unitPrice"` // cents
}

// Complete reports whether the line names an article and has a positive quantity and price.
func (l Line) Complete() bool {
	return strings.TrimSpace(l.Article) != "" && l.Quantity.Sign() > 0 && l.UnitPrice > 0
}

// Extension is quantity times unit price, rounded to the cent.
func (l Line) Extension() int64 {
	return l.Quantity.Mul(decimal.NewFromInt(l.UnitPrice)).Round(0).IntPart()
}

// Sale is one recorded takings entry ("recette").
type Sale struct {
	ID    uuid.UUID `json:"id"`
	Date  time.Time `json:"date"`
	Lines []Line    `json:"items"`
	Total int64     `json:"total"` // cents

	period.Archived
}

func Total(lines []Line) int64 {
	var total int64
	for _, l := range lines {
		total += l.Extension()
	}

	return total
}
