package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/bistro/internal/maintenance"
	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/personnel"
	"github.com/MrJamesThe3rd/bistro/internal/purchase"
	"github.com/MrJamesThe3rd/bistro/internal/sales"
)

// PeriodData holds the records dated inside one period.
type PeriodData struct {
	Period      period.Key
	Purchases   []*purchase.Purchase
	Maintenance []*maintenance.Maintenance
	Sales       []*sales.Sale
}

// Totals is the financial summary of a period. Amounts are in cents.
type Totals struct {
	Revenue      int64           `json:"revenue"`
	Salaries     int64           `json:"salaries"`
	Maintenance  int64           `json:"maintenance"`
	Purchases    int64           `json:"purchases"`
	TotalExpense int64           `json:"totalExpense"`
	Profit       int64           `json:"profit"`
	ProfitMargin decimal.Decimal `json:"profitMargin"`
	SaleCount    int             `json:"saleCount"`
}

// FilterPeriod keeps the records whose date falls in the month of asOf.
func FilterPeriod(
	asOf time.Time,
	purchases []*purchase.Purchase,
	maint []*maintenance.Maintenance,
	sold []*sales.Sale,
) PeriodData {
	key := period.Of(asOf)

	data := PeriodData{Period: key}

	for _, p := range purchases {
		if key.Contains(p.Date) {
			data.Purchases = append(data.Purchases, p)
		}
	}

	for _, m := range maint {
		if key.Contains(m.Date) {
			data.Maintenance = append(data.Maintenance, m)
		}
	}

	for _, s := range sold {
		if key.Contains(s.Date) {
			data.Sales = append(data.Sales, s)
		}
	}

	return data
}

// ComputeTotals sums a period. Salaries come from the live counters of the
// non-deleted employees and are not filtered by date. Only paid purchases
// count as expense.
func ComputeTotals(employees []*personnel.Employee, data PeriodData) Totals {
	t := Totals{
		Salaries:  personnel.TotalNetSalary(employees),
		SaleCount: len(data.Sales),
	}

	for _, s := range data.Sales {
		t.Revenue += s.Total
	}

	for _, m := range data.Maintenance {
		t.Maintenance += m.Amount
	}

	for _, p := range data.Purchases {
		if p.Paid {
			t.Purchases += p.Amount
		}
	}

	t.TotalExpense = t.Salaries + t.Maintenance + t.Purchases
	t.Profit = t.Revenue - t.TotalExpense
	t.ProfitMargin = Margin(t.Profit, t.Revenue)

	return t
}

// Margin is profit over revenue as a percentage with two decimals, or zero
// without revenue.
func Margin(profit, revenue int64) decimal.Decimal {
	if revenue <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(profit).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(revenue)).
		Round(2)
}
