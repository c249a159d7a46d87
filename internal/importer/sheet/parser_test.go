package sheet_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/bistro/internal/importer/sheet"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_Achats(t *testing.T) {
	csv := `Café des Amis;;;;;
Achats octobre 2026;;;;;

Date;Article;Quantité;Unité;Montant;Payé
02/10/2026;Lait;12;l;1.234,56 TND;oui
03/10/2026;Sucre;5,5;kg;45,00;non
;;;;;
Total;;;;1.279,56;
`

	res, err := sheet.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, "achats", res.Profile)
	assert.Equal(t, sheet.KindPurchases, res.Kind)
	require.Len(t, res.Rows, 2)

	assert.Equal(t, date(2026, 10, 2), res.Rows[0].Date)
	assert.Equal(t, "Lait", res.Rows[0].Article)
	assert.True(t, decimal.NewFromInt(12).Equal(res.Rows[0].Quantity))
	assert.Equal(t, "l", res.Rows[0].Unit)
	assert.Equal(t, int64(123456), res.Rows[0].Price)
	assert.True(t, res.Rows[0].Paid)

	assert.True(t, decimal.RequireFromString("5.5").Equal(res.Rows[1].Quantity))
	assert.Equal(t, int64(4500), res.Rows[1].Price)
	assert.False(t, res.Rows[1].Paid)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 8, res.Skipped[0].Line)
}

func TestParser_SalesComma(t *testing.T) {
	csv := "Date,Article,Quantity,Unit price\n2026-10-12,Espresso,10,2.50\n2026-10-12,\"Croissant, butter\",4,1.50\n"

	res, err := sheet.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, "sales", res.Profile)
	assert.Equal(t, sheet.KindSales, res.Kind)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "Croissant, butter", res.Rows[1].Article)
	assert.Equal(t, int64(250), res.Rows[0].Price)
	assert.Empty(t, res.Skipped)
}

func TestParser_RecettesLatin1(t *testing.T) {
	utf8 := "Date;Article;Quantité;Prix unitaire\n12/10/2026;Thé glacé;3;1,20\n"

	latin1, err := charmap.Windows1252.NewEncoder().Bytes([]byte(utf8))
	require.NoError(t, err)

	res, err := sheet.NewParser().Parse(bytes.NewReader(latin1))
	require.NoError(t, err)

	assert.Equal(t, "recettes", res.Profile)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "Thé glacé", res.Rows[0].Article)
	assert.Equal(t, int64(120), res.Rows[0].Price)
}

func TestParser_InvalidRows(t *testing.T) {
	csv := `Date;Article;Quantité;Montant
31/02/2026;Lait;1;10
01/10/2026;;1;10
01/10/2026;Lait;0;10
01/10/2026;Lait;1;abc
01/10/2026;Lait;1;10
`

	res, err := sheet.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Len(t, res.Rows, 1)
	require.Len(t, res.Skipped, 4)
	assert.Equal(t, "line 2: invalid date \"31/02/2026\"", res.Skipped[0].Error())
	assert.Equal(t, "missing article", res.Skipped[1].Reason)
	assert.Equal(t, "invalid quantity", res.Skipped[2].Reason)
	assert.Equal(t, "invalid amount", res.Skipped[3].Reason)
}

func TestParser_UnknownFormat(t *testing.T) {
	_, err := sheet.NewParser().Parse(strings.NewReader("Nom;Prénom\nBen Salah;Amel\n"))
	assert.ErrorContains(t, err, "no matching spreadsheet format")
}

func TestParser_ZeroPrice(t *testing.T) {
	type testCase struct {
		name        string
		csv         string
		wantRows    int
		wantSkipped []string
	}

	tests := []testCase{
		{
			name:        "SaleLineWithoutPriceSkipped",
			csv:         "Date;Article;Quantité;Prix unitaire\n12/10/2026;Espresso;10;2,50\n13/10/2026;Offert;1;0\n",
			wantRows:    1,
			wantSkipped: []string{"invalid amount"},
		},
		{
			name:     "FreePurchaseKept",
			csv:      "Date;Article;Quantité;Montant\n02/10/2026;Échantillon;1;0\n",
			wantRows: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := sheet.NewParser().Parse(strings.NewReader(tt.csv))
			require.NoError(t, err)

			assert.Len(t, res.Rows, tt.wantRows)

			reasons := make([]string, 0, len(res.Skipped))
			for _, s := range res.Skipped {
				reasons = append(reasons, s.Reason)
			}

			assert.ElementsMatch(t, tt.wantSkipped, reasons)
		})
	}
}
