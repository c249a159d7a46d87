package inventory

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrStockItemNotFound = errors.New("stock item not found")
	ErrArticleNotFound   = errors.New("article not found")
	ErrArticleExists     = errors.New("article already exists")
)

const (
	DefaultUnit       = "unit"
	LowStockThreshold = 10
)

// Level summarises how much of a stock item is left.
type Level string

const (
	LevelOut       Level = "out"
	LevelLow       Level = "low"
	LevelAvailable Level = "available"
)

// StockItem is keyed by name; purchases and sales find it case-insensitively.
type StockItem struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	AddedAt  time.Time       `json:"addedAt"`
}

func (i *StockItem) Level() Level {
	switch {
	case i.Quantity.Sign() <= 0:
		return LevelOut
	case i.Quantity.LessThan(decimal.NewFromInt(LowStockThreshold)):
		return LevelLow
	}

	return LevelAvailable
}

// Component is one line of an article's bill of materials: the stock consumed per unit sold.
type Component struct {
	StockItemID   uuid.UUID       `json:"stockItemId"`
	StockItemName string          `json:"stockItemName"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// Article is a sellable product.
type Article struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Components []Component `json:"consumption"`
}

// Usage is a quantity of an article sold.
type Usage struct {
	Article  string
	Quantity decimal.Decimal
}

// Requirement compares the stock an order needs against what is on hand.
type Requirement struct {
	StockItemID uuid.UUID       `json:"stockItemId"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Needed      decimal.Decimal `json:"needed"`
	Available   decimal.Decimal `json:"available"`
	Sufficient  bool            `json:"sufficient"`
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
