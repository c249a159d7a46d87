package view

import (
	"context"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const dbTimeout = 5 * time.Second

const currency = "TND"

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// FormatAmount formats an amount stored as cents, e.g. "1234.50 TND".
func FormatAmount(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2) + " " + currency
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
