// Package query reads the optional filters shared by list endpoints.
package query

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MrJamesThe3rd/bistro/internal/period"
)

// AsOf reads ?date=YYYY-MM-DD and falls back to now.
func AsOf(r *http.Request, now func() time.Time) (time.Time, error) {
	s := r.URL.Query().Get("date")
	if s == "" {
		return now(), nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}

	return t, nil
}

// Month reads ?month=YYYY-MM. It returns nil when absent.
func Month(r *http.Request) (*period.Key, error) {
	s := r.URL.Query().Get("month")
	if s == "" {
		return nil, nil
	}

	k, err := period.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q", s)
	}

	return &k, nil
}

// Bool reads a boolean parameter. It returns nil when absent.
func Bool(r *http.Request, name string) (*bool, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, s)
	}

	return &b, nil
}
