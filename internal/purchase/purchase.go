package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/bistro/internal/period"
)

var ErrNotFound = errors.New("purchase not found")

// Purchase is a supply bought for the café. Unpaid purchases are on credit and
// do not count as realised expense.
type Purchase struct {
	ID       uuid.UUID       `json:"id"`
	Date     time.Time       `json:"date"`
	Article  string          `json:"article"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit,omitempty"`
	Amount   int64           `json:"amount"` // cents
	Paid     bool            `json:"paid"`

	period.Archived
}
