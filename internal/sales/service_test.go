package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/bistro/internal/inventory"
	inventoryStore "github.com/MrJamesThe3rd/bistro/internal/inventory/store"
	"github.com/MrJamesThe3rd/bistro/internal/sales"
	salesStore "github.com/MrJamesThe3rd/bistro/internal/sales/store"
	"github.com/MrJamesThe3rd/bistro/internal/storage/memory"
)

var date = time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLine_Extension(t *testing.T) {
	type testCase struct {
		name string
		line sales.Line
		want int64
	}

	tests := []testCase{
		{name: "Whole", line: sales.Line{Quantity: dec("3"), UnitPrice: 450}, want: 1350},
		{name: "Fractional", line: sales.Line{Quantity: dec("0.5"), UnitPrice: 1250}, want: 625},
		{name: "RoundsHalfUp", line: sales.Line{Quantity: dec("0.5"), UnitPrice: 125}, want: 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.line.Extension())
		})
	}
}

type fixture struct {
	sales     *sales.Service
	inventory *inventory.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	db := memory.New()
	inv := inventory.NewService(inventoryStore.New(db))

	return fixture{
		sales:     sales.NewService(salesStore.New(db), inv, db),
		inventory: inv,
	}
}

func TestService_Record(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.inventory.Receive(ctx, "Coffee beans", "kg", dec("1"), date))

	stock, err := f.inventory.ListStock(ctx)
	require.NoError(t, err)

	_, err = f.inventory.CreateArticle(ctx, inventory.CreateArticleParams{
		Name:       "Espresso",
		Components: []inventory.ComponentParams{{StockItemID: stock[0].ID, Quantity: dec("0.009")}},
	})
	require.NoError(t, err)

	sale, err := f.sales.Record(ctx, sales.RecordParams{
		Date: date,
		Lines: []sales.Line{
			{Article: "Espresso", Quantity: dec("10"), UnitPrice: 250},
			{Article: "Croissant", Quantity: dec("4"), UnitPrice: 150},
			{Article: "", Quantity: dec("1"), UnitPrice: 100},
			{Article: "Tea", Quantity: dec("0"), UnitPrice: 200},
		},
	})
	require.NoError(t, err)
	assert.Len(t, sale.Lines, 2)
	assert.Equal(t, int64(3100), sale.Total)

	stock, err = f.inventory.ListStock(ctx)
	require.NoError(t, err)
	assert.True(t, dec("0.91").Equal(stock[0].Quantity))

	listed, err := f.sales.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestService_Record_NoCompleteLines(t *testing.T) {
	f := newFixture(t)

	_, err := f.sales.Record(context.Background(), sales.RecordParams{
		Date:  date,
		Lines: []sales.Line{{Article: "Tea", Quantity: dec("1")}},
	})
	assert.ErrorIs(t, err, sales.ErrNoLines)
}

type failingStock struct{}

func (failingStock) Consume(context.Context, []inventory.Usage) error {
	return errors.New("stock unavailable")
}

func (failingStock) Project(context.Context, []inventory.Usage) ([]inventory.Requirement, error) {
	return nil, nil
}

func TestService_Record_RollsBackOnStockFailure(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	svc := sales.NewService(salesStore.New(db), failingStock{}, db)

	_, err := svc.Record(ctx, sales.RecordParams{
		Date:  date,
		Lines: []sales.Line{{Article: "Tea", Quantity: dec("1"), UnitPrice: 200}},
	})
	require.Error(t, err)

	listed, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
