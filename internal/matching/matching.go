package matching

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("alias not found")

// Alias maps a spreadsheet label to the article name used in the café,
// e.g. "CAFE EXP 7G" to "Express".
type Alias struct {
	ID        uuid.UUID `json:"id"`
	Pattern   string    `json:"pattern"`
	Article   string    `json:"article"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a *Alias) matches(raw string) bool {
	return strings.Contains(strings.ToLower(raw), strings.ToLower(a.Pattern))
}
