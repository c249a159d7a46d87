package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/bistro/internal/importer"
	"github.com/MrJamesThe3rd/bistro/internal/importer/sheet"
	"github.com/MrJamesThe3rd/bistro/internal/inventory"
	inventoryStore "github.com/MrJamesThe3rd/bistro/internal/inventory/store"
	"github.com/MrJamesThe3rd/bistro/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/bistro/internal/matching/store"
	"github.com/MrJamesThe3rd/bistro/internal/purchase"
	purchaseStore "github.com/MrJamesThe3rd/bistro/internal/purchase/store"
	"github.com/MrJamesThe3rd/bistro/internal/sales"
	salesStore "github.com/MrJamesThe3rd/bistro/internal/sales/store"
	"github.com/MrJamesThe3rd/bistro/internal/storage/memory"
)

type fixture struct {
	importer  *importer.Service
	purchases *purchase.Service
	sales     *sales.Service
	inventory *inventory.Service
}

func newFixture() fixture {
	db := memory.New()
	inv := inventory.NewService(inventoryStore.New(db))
	p := purchase.NewService(purchaseStore.New(db), inv, db)
	s := sales.NewService(salesStore.New(db), inv, db)

	return fixture{
		importer:  importer.NewService(p, s, db),
		purchases: p,
		sales:     s,
		inventory: inv,
	}
}

func TestService_Import(t *testing.T) {
	type args struct {
		kind sheet.Kind
		csv  string
	}

	type testCase struct {
		name    string
		args    args
		want    importer.Summary
		wantErr error
	}

	tests := []testCase{
		{
			name: "Purchases",
			args: args{
				kind: sheet.KindPurchases,
				csv:  "Date;Article;Quantité;Unité;Montant;Payé\n02/10/2026;Lait;12;l;24,00;oui\n03/10/2026;Sucre;5;kg;9,50;non\n",
			},
			want: importer.Summary{Kind: sheet.KindPurchases, Profile: "achats", Purchases: 2},
		},
		{
			name: "SalesGroupedByDay",
			args: args{
				csv: "Date,Article,Quantity,Unit price\n2026-10-13,Tea,2,1.20\n2026-10-12,Espresso,10,2.50\n2026-10-12,Croissant,4,1.50\n",
			},
			want: importer.Summary{Kind: sheet.KindSales, Profile: "sales", Sales: 2},
		},
		{
			name: "KindMismatch",
			args: args{
				kind: sheet.KindSales,
				csv:  "Date;Article;Quantité;Montant\n02/10/2026;Lait;12;24,00\n",
			},
			wantErr: importer.ErrKindMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newFixture().importer.Import(context.Background(), tt.args.kind, strings.NewReader(tt.args.csv))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestService_Import_StoresRecords(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.importer.Import(ctx, "", strings.NewReader(
		"Date;Article;Quantité;Unité;Montant;Payé\n02/10/2026;Lait;12;l;24,00;oui\n02/10/2026;Lait;3;l;6,00;oui\n",
	))
	require.NoError(t, err)

	stored, err := f.purchases.List(ctx, purchase.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	stock, err := f.inventory.ListStock(ctx)
	require.NoError(t, err)
	require.Len(t, stock, 1)
	assert.Equal(t, "15", stock[0].Quantity.String())

	_, err = f.importer.Import(ctx, sheet.KindSales, strings.NewReader(
		"Date;Article;Quantité;Prix unitaire\n12/10/2026;Espresso;10;2,50\n12/10/2026;Croissant;4;1,50\n",
	))
	require.NoError(t, err)

	sold, err := f.sales.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, sold, 1)
	assert.Equal(t, int64(3100), sold[0].Total)
}

func TestService_Import_SkipsUnpricedSaleLines(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	csv := "Date;Article;Quantité;Prix unitaire\n12/10/2026;Espresso;10;2,50\n13/10/2026;Offert;1;0\n"

	preview, err := f.importer.Parse(ctx, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, preview.Rows, 1)
	require.Len(t, preview.Skipped, 1)
	assert.Equal(t, 3, preview.Skipped[0].Line)

	_, err = f.importer.Import(ctx, sheet.KindSales, strings.NewReader(csv))
	require.NoError(t, err)

	sold, err := f.sales.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, sold, 1)
	assert.Equal(t, int64(2500), sold[0].Total)
}

func TestService_Import_ResolvesAliases(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	inv := inventory.NewService(inventoryStore.New(db))
	p := purchase.NewService(purchaseStore.New(db), inv, db)
	aliases := matching.NewService(matchingStore.New(db))

	_, err := aliases.Learn(ctx, matching.LearnParams{Pattern: "lait uht", Article: "Lait"})
	require.NoError(t, err)

	svc := importer.NewService(p, sales.NewService(salesStore.New(db), inv, db), db, importer.WithMatcher(aliases))

	preview, err := svc.Parse(ctx, strings.NewReader("Date;Article;Quantité;Unité;Montant;Payé\n02/10/2026;LAIT UHT 1L;12;l;24,00;oui\n"))
	require.NoError(t, err)
	require.Len(t, preview.Rows, 1)
	assert.Equal(t, "Lait", preview.Rows[0].Article)

	_, err = svc.Import(ctx, sheet.KindPurchases, strings.NewReader("Date;Article;Quantité;Unité;Montant;Payé\n02/10/2026;LAIT UHT 1L;12;l;24,00;oui\n02/10/2026;Sucre;1;kg;2,00;oui\n"))
	require.NoError(t, err)

	stock, err := inv.ListStock(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(stock))
	for _, item := range stock {
		names = append(names, item.Name)
	}

	assert.ElementsMatch(t, []string{"Lait", "Sucre"}, names)
}
