package maintenance

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bistro/internal/period"
)

var ErrNotFound = errors.New("maintenance not found")

// Maintenance is a paid service call: repairs, cleaning, technician visits.
type Maintenance struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Service     string    `json:"service"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"` // cents

	period.Archived
}
