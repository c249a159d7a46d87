package period

import (
	"fmt"
	"time"
)

const layout = "2006-01"

// Key identifies a calendar month as YYYY-MM.
type Key string

// Of returns the period containing t, in t's own location.
func Of(t time.Time) Key {
	return Key(t.Format(layout))
}

func Parse(s string) (Key, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return "", fmt.Errorf("parsing period %q: %w", s, err)
	}

	return Of(t), nil
}

// Contains reports whether t falls in the same (year, month) as k.
func (k Key) Contains(t time.Time) bool {
	return !t.IsZero() && Of(t) == k
}

// Start returns midnight UTC on the first day of the period.
func (k Key) Start() time.Time {
	t, err := time.Parse(layout, string(k))
	if err != nil {
		return time.Time{}
	}

	return t
}

// End returns the last instant of the period.
func (k Key) End() time.Time {
	start := k.Start()
	if start.IsZero() {
		return start
	}

	return start.AddDate(0, 1, 0).Add(-time.Nanosecond)
}

func (k Key) Next() Key {
	return Of(k.Start().AddDate(0, 1, 0))
}

// Label renders the period for humans, e.g. "October 2026".
func (k Key) Label() string {
	start := k.Start()
	if start.IsZero() {
		return string(k)
	}

	return start.Format("January 2006")
}

func (k Key) String() string {
	return string(k)
}

// Archived tags a record that has been moved into a history collection.
type Archived struct {
	ArchivedPeriod Key        `json:"archivedMonth,omitempty"`
	ArchivedAt     *time.Time `json:"archivedAt,omitempty"`
}

func (a *Archived) Archive(k Key, at time.Time) {
	a.ArchivedPeriod = k
	a.ArchivedAt = &at
}
