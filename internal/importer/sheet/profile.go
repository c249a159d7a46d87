package sheet

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Kind is the collection a spreadsheet feeds.
type Kind string

const (
	KindPurchases Kind = "purchases"
	KindSales     Kind = "sales"
)

// Profile describes the column layout of a spreadsheet export. Optional
// columns may be missing from the header.
type Profile struct {
	Name     string
	Kind     Kind
	Date     string
	Article  string
	Quantity string
	Price    string // purchase amount, or unit price for sales
	Unit     string // optional
	Paid     string // optional
}

func (p Profile) requiredCols() []string {
	return []string{p.Date, p.Article, p.Quantity, p.Price}
}

// profiles are tried in order, sales first since a sales sheet may also carry
// a total column. Headers are compared after folding case and
// accents, so "Quantité" and "QUANTITE" both match "quantite".
var profiles = []Profile{
	{Name: "recettes", Kind: KindSales, Date: "date", Article: "article", Quantity: "quantite", Price: "prix unitaire"},
	{Name: "sales", Kind: KindSales, Date: "date", Article: "article", Quantity: "quantity", Price: "unit price"},
	{Name: "achats", Kind: KindPurchases, Date: "date", Article: "article", Quantity: "quantite", Price: "montant", Unit: "unite", Paid: "paye"},
	{Name: "purchases", Kind: KindPurchases, Date: "date", Article: "article", Quantity: "quantity", Price: "amount", Unit: "unit", Paid: "paid"},
}

var fold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeHeader lower-cases, strips accents and collapses inner spaces.
func normalizeHeader(s string) string {
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}

	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}
