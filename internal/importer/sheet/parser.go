package sheet

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/MrJamesThe3rd/bistro/internal/encoding"
)

var ErrUnknownFormat = errors.New("no matching spreadsheet format")

var dateLayouts = []string{"02/01/2006", "02-01-2006", "2006-01-02", "02.01.2006", "2/1/2006"}

// Row is one parsed spreadsheet line. Price is the purchase amount or the
// sale unit price, in cents.
type Row struct {
	Line     int
	Date     time.Time
	Article  string
	Quantity decimal.Decimal
	Unit     string
	Price    int64
	Paid     bool
}

// RowError reports a data line that could not be read.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

type Result struct {
	Profile string
	Kind    Kind
	Rows    []Row
	Skipped []RowError
}

// Parser reads purchase and sale spreadsheets saved as CSV. It detects the
// encoding, the separator and which profile the header matches.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) (*Result, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	br := bufio.NewReader(utf8r)

	sample, err := br.Peek(1024)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("peek: %w", err)
	}

	reader := csv.NewReader(br)
	reader.Comma = enc.Separator(sample)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records []record

	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		records = append(records, record{line: line, cells: cells})
	}

	profile, cols, headerIdx := detectProfile(records)
	if profile == nil {
		return nil, fmt.Errorf("%w: expected Date, Article, Quantité and Montant or Prix unitaire columns", ErrUnknownFormat)
	}

	result := &Result{Profile: profile.Name, Kind: profile.Kind}
	parseRows(profile, cols, records[headerIdx+1:], result)

	return result, nil
}

// record keeps the file line of a CSV record, blank lines being skipped by the reader.
type record struct {
	line  int
	cells []string
}

type colIndex map[string]int

func (c colIndex) get(row []string, name string) string {
	idx, ok := c[name]
	if !ok || name == "" {
		return ""
	}

	return cellValue(row, idx)
}

func detectProfile(records []record) (*Profile, colIndex, int) {
	for rowIdx, rec := range records {
		cols := make(colIndex)

		for i, cell := range rec.cells {
			if name := normalizeHeader(cell); name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows skips blank and footer lines silently and records every other
// unreadable line in result.Skipped.
func parseRows(p *Profile, cols colIndex, records []record, result *Result) {
	for _, rec := range records {
		row, line := rec.cells, rec.line

		dateStr := cols.get(row, p.Date)
		article := cols.get(row, p.Article)

		if dateStr == "" && article == "" {
			continue
		}

		date, ok := parseDate(dateStr)
		if !ok {
			result.Skipped = append(result.Skipped, RowError{Line: line, Reason: fmt.Sprintf("invalid date %q", dateStr)})
			continue
		}

		if article == "" {
			result.Skipped = append(result.Skipped, RowError{Line: line, Reason: "missing article"})
			continue
		}

		qty, err := parseNumber(cols.get(row, p.Quantity))
		if err != nil || qty.Sign() <= 0 {
			result.Skipped = append(result.Skipped, RowError{Line: line, Reason: "invalid quantity"})
			continue
		}

		// A sale line without a unit price is not a complete line.
		price, err := parseCents(cols.get(row, p.Price))
		if err != nil || price < 0 || (p.Kind == KindSales && price == 0) {
			result.Skipped = append(result.Skipped, RowError{Line: line, Reason: "invalid amount"})
			continue
		}

		result.Rows = append(result.Rows, Row{
			Line:     line,
			Date:     date,
			Article:  article,
			Quantity: qty,
			Unit:     cols.get(row, p.Unit),
			Price:    price,
			Paid:     parseBool(cols.get(row, p.Paid)),
		})
	}
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func parseBool(s string) bool {
	switch normalizeHeader(s) {
	case "oui", "o", "yes", "y", "true", "1", "x", "paye", "paid":
		return true
	}

	return false
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
