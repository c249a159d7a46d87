package settings

import (
	"errors"
	"time"

	"github.com/MrJamesThe3rd/bistro/internal/period"
)

var ErrNotFound = errors.New("settings not found")

const DefaultSickAllowance = 30

// Settings is the process-wide configuration edited from the reset screen.
type Settings struct {
	SickAllowance int        `json:"sickAllowance"`
	LastResetDate time.Time  `json:"lastResetDate"`
	CurrentPeriod period.Key `json:"currentPeriod"`
}

// Defaults returns the settings used before the first save.
func Defaults(now time.Time, sickAllowance int) *Settings {
	return &Settings{
		SickAllowance: sickAllowance,
		LastResetDate: now,
		CurrentPeriod: period.Of(now),
	}
}
