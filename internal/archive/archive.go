package archive

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/personnel"
	"github.com/MrJamesThe3rd/bistro/internal/report"
)

var ErrNotFound = errors.New("archive not found")

type Expenses struct {
	Salaries    int64 `json:"salaries"`
	Purchases   int64 `json:"purchases"`
	Maintenance int64 `json:"maintenance"`
	Total       int64 `json:"total"`
}

type Revenues struct {
	Sales     int64 `json:"sales"`
	SaleCount int   `json:"saleCount"`
}

// MonthlyArchive is the frozen state of a closed period. It is never updated,
// only deleted as a whole.
type MonthlyArchive struct {
	ID         uuid.UUID             `json:"id"`
	Period     period.Key            `json:"month"`
	Employees  []*personnel.Employee `json:"employees"`
	Expenses   Expenses              `json:"expenses"`
	Revenues   Revenues              `json:"revenues"`
	ArchivedAt time.Time             `json:"archivedAt"`
}

// Profit is revenue less expenses.
func (a *MonthlyArchive) Profit() int64 {
	return a.Revenues.Sales - a.Expenses.Total
}

func fromSnapshot(key period.Key, snap *report.Snapshot, at time.Time) *MonthlyArchive {
	return &MonthlyArchive{
		ID:        uuid.New(),
		Period:    key,
		Employees: snap.Employees,
		Expenses: Expenses{
			Salaries:    snap.Totals.Salaries,
			Purchases:   snap.Totals.Purchases,
			Maintenance: snap.Totals.Maintenance,
			Total:       snap.Totals.TotalExpense,
		},
		Revenues: Revenues{
			Sales:     snap.Totals.Revenue,
			SaleCount: snap.Totals.SaleCount,
		},
		ArchivedAt: at,
	}
}
