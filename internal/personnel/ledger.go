package personnel

import (
	"slices"
	"time"
)

func sameDay(a, b time.Time) bool {
	return a.Format(time.DateOnly) == b.Format(time.DateOnly)
}

func (e *Employee) presenceIndex(date time.Time) int {
	return slices.IndexFunc(e.Presences, func(p Presence) bool {
		return sameDay(p.Date, date)
	})
}

// AddPresence records the status for a day that has no record yet.
func (e *Employee) AddPresence(date time.Time, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	if e.presenceIndex(date) >= 0 {
		return ErrDuplicatePresence
	}

	e.Presences = append(e.Presences, Presence{Date: date, Status: status})
	slices.SortStableFunc(e.Presences, func(a, b Presence) int {
		return a.Date.Compare(b.Date)
	})

	e.Recount()

	return nil
}

func (e *Employee) EditPresence(date time.Time, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	idx := e.presenceIndex(date)
	if idx < 0 {
		return ErrPresenceNotFound
	}

	e.Presences[idx].Status = status
	e.Recount()

	return nil
}

func (e *Employee) DeletePresence(date time.Time) error {
	idx := e.presenceIndex(date)
	if idx < 0 {
		return ErrPresenceNotFound
	}

	e.Presences = slices.Delete(e.Presences, idx, idx+1)
	e.Recount()

	return nil
}

// Recount replays every presence against the employee's sick allowance.
func (e *Employee) Recount() {
	var worked, absences, sick int

	for _, p := range e.Presences {
		switch p.Status {
		case StatusPresent:
			worked++
		case StatusAbsent:
			absences++
		case StatusSick:
			sick++
		}
	}

	e.DaysWorked = worked
	e.Absences = absences
	e.SickBalance = max(e.SickAllowance-sick, 0)
}

// StartPeriod clears the period counters and grants a fresh sick allowance.
func (e *Employee) StartPeriod(sickAllowance int) {
	e.Presences = []Presence{}
	e.Advance = 0
	e.SickAllowance = sickAllowance
	e.Recount()
}
