package export

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/bistro/internal/dashboard"
	"github.com/MrJamesThe3rd/bistro/internal/inventory"
	"github.com/MrJamesThe3rd/bistro/internal/maintenance"
	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/personnel"
	"github.com/MrJamesThe3rd/bistro/internal/purchase"
	"github.com/MrJamesThe3rd/bistro/internal/report"
	"github.com/MrJamesThe3rd/bistro/internal/sales"
)

var asOf = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

type fakeSnapshots struct{ snap *report.Snapshot }

func (f fakeSnapshots) Snapshot(context.Context, time.Time) (*report.Snapshot, error) {
	return f.snap, nil
}

type fakePurchases []*purchase.Purchase

func (f fakePurchases) List(context.Context, purchase.ListFilter) ([]*purchase.Purchase, error) {
	return f, nil
}

type fakeMaintenance []*maintenance.Maintenance

func (f fakeMaintenance) List(context.Context, *period.Key) ([]*maintenance.Maintenance, error) {
	return f, nil
}

type fakeSales []*sales.Sale

func (f fakeSales) List(context.Context, *period.Key) ([]*sales.Sale, error) {
	return f, nil
}

type fakeInventory struct {
	stock    []*inventory.StockItem
	articles []*inventory.Article
}

func (f fakeInventory) ListStock(context.Context) ([]*inventory.StockItem, error) {
	return f.stock, nil
}

func (f fakeInventory) ListArticles(context.Context) ([]*inventory.Article, error) {
	return f.articles, nil
}

func newTestService() *Service {
	return NewService(
		fakeSnapshots{snap: &report.Snapshot{
			AsOf:      asOf,
			Employees: []*personnel.Employee{{FirstName: "Amel", LastName: "Ben Salah", SalaryPerDay: 2000, DaysWorked: 22, Absences: 1, Advance: 5000}},
			Totals: report.Totals{
				Revenue: 500000, Salaries: 200000, Maintenance: 30000, Purchases: 70000,
				TotalExpense: 300000, Profit: 200000, ProfitMargin: decimal.NewFromInt(40), SaleCount: 2,
			},
		}},
		fakePurchases{{Date: asOf, Article: "Milk", Quantity: decimal.NewFromInt(12), Unit: "l", Amount: 2400, Paid: true}},
		fakeMaintenance{{Date: asOf, Service: "Espresso machine", Amount: 30000}},
		fakeSales{{Date: asOf, Total: 1100, Lines: []sales.Line{
			{Article: "Espresso", Quantity: decimal.NewFromInt(2), UnitPrice: 250},
			{Article: "Croissant", Quantity: decimal.NewFromInt(4), UnitPrice: 150},
		}}},
		fakeInventory{
			stock:    []*inventory.StockItem{{Name: "Milk", Quantity: decimal.NewFromInt(12), Unit: "l", AddedAt: asOf}},
			articles: []*inventory.Article{{Name: "Latte", Components: []inventory.Component{{StockItemName: "Milk", Quantity: decimal.RequireFromString("0.2")}}}},
		},
	)
}

func TestService_WriteWorkbook(t *testing.T) {
	svc := newTestService()

	b, err := svc.Collect(context.Background(), asOf)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteWorkbook(&buf, b))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)

	defer f.Close()

	assert.Equal(t,
		[]string{"Employees", "Purchases", "Stock", "Maintenance", "Sales", "Articles", "Summary"},
		f.GetSheetList(),
	)

	employees, err := f.GetRows("Employees")
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Amel", employees[1][0])
	assert.Equal(t, "370", employees[1][9])

	sold, err := f.GetRows("Sales")
	require.NoError(t, err)
	assert.Len(t, sold, 3)

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, []string{"Period", "October 2026"}, summary[0])
	assert.Equal(t, []string{"Revenue", "5000"}, summary[1])
	assert.Equal(t, []string{"Profit", "2000"}, summary[7])
	assert.Equal(t, []string{"Profit margin (%)", "40"}, summary[8])
}

func TestService_SaveWorkbook(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	b, file, err := newTestService().SaveWorkbook(context.Background(), asOf, dir)
	require.NoError(t, err)

	assert.Equal(t, period.Key("2026-10"), b.Period)
	assert.Equal(t, filepath.Join(dir, "Cafe_Export_2026-10.xlsx"), file)

	f, err := excelize.OpenFile(file)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Summary")
}

func TestService_GenerateSummary(t *testing.T) {
	svc := newTestService()

	b, err := svc.Collect(context.Background(), asOf)
	require.NoError(t, err)

	got := svc.GenerateSummary(b)

	assert.Contains(t, got, "October 2026")
	assert.Contains(t, got, "* Revenue      | 5000.00 (2 sales)")
	assert.Contains(t, got, "* Profit       | 2000.00 (40.00%)")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Cafe_Export_2026-10.xlsx", FileName(period.Of(asOf)))
}

func TestService_WriteHistory(t *testing.T) {
	var buf bytes.Buffer

	err := newTestService().WriteHistory(&buf, []*dashboard.HistoryPoint{{Period: "2026-09", Revenue: 100, Profit: 40}})
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "2026-09", got[0]["month"])
	assert.EqualValues(t, 40, got[0]["profit"])

	buf.Reset()
	require.NoError(t, newTestService().WriteHistory(&buf, nil))
	assert.JSONEq(t, "[]", buf.String())
}

func Test_amount(t *testing.T) {
	assert.Equal(t, "-12.05", amount(-1205))
	assert.Equal(t, "0.07", amount(7))
}
