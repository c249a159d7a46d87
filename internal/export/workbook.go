package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const dateLayout = "2006-01-02"

type sheet struct {
	name   string
	header []any
	rows   [][]any
}

// SaveWorkbook collects the data of the period containing asOf and writes its
// workbook into dir, which is created when missing.
func (s *Service) SaveWorkbook(ctx context.Context, asOf time.Time, dir string) (*Bundle, string, error) {
	b, err := s.Collect(ctx, asOf)
	if err != nil {
		return nil, "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("creating output dir: %w", err)
	}

	file := filepath.Join(dir, FileName(b.Period))

	f, err := os.Create(file)
	if err != nil {
		return nil, "", fmt.Errorf("creating workbook: %w", err)
	}

	if err := s.WriteWorkbook(f, b); err != nil {
		f.Close()
		return nil, "", err
	}

	if err := f.Close(); err != nil {
		return nil, "", fmt.Errorf("closing workbook: %w", err)
	}

	return b, file, nil
}

// WriteWorkbook writes one sheet per collection plus a summary sheet.
func (s *Service) WriteWorkbook(w io.Writer, b *Bundle) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, sh := range sheets(b) {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return fmt.Errorf("renaming first sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", sh.name, err)
		}

		if err := writeSheet(f, sh, bold); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

func writeSheet(f *excelize.File, sh sheet, headerStyle int) error {
	if err := f.SetSheetRow(sh.name, "A1", &sh.header); err != nil {
		return fmt.Errorf("writing %s header: %w", sh.name, err)
	}

	if err := f.SetRowStyle(sh.name, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("styling %s header: %w", sh.name, err)
	}

	for i, row := range sh.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sh.name, i+2, err)
		}
	}

	last, err := excelize.ColumnNumberToName(len(sh.header))
	if err != nil {
		return err
	}

	return f.SetColWidth(sh.name, "A", last, 18)
}

func sheets(b *Bundle) []sheet {
	employees := sheet{
		name: "Employees",
		header: []any{"First name", "Last name", "Role", "Salary per day", "Fixed monthly salary",
			"Days worked", "Absences", "Advance", "Sick balance", "Net salary"},
	}

	for _, e := range b.Employees {
		var fixed any
		if e.HasFixedSalary() {
			fixed = money(*e.FixedMonthlySalary)
		}

		employees.rows = append(employees.rows, []any{
			e.FirstName, e.LastName, e.Role, money(e.SalaryPerDay), fixed,
			e.DaysWorked, e.Absences, money(e.Advance), e.SickBalance, money(e.NetSalary()),
		})
	}

	purchases := sheet{
		name:   "Purchases",
		header: []any{"Date", "Article", "Quantity", "Unit", "Amount", "Paid"},
	}

	for _, p := range b.Purchases {
		purchases.rows = append(purchases.rows, []any{
			p.Date.Format(dateLayout), p.Article, p.Quantity.InexactFloat64(), p.Unit, money(p.Amount), yesNo(p.Paid),
		})
	}

	stock := sheet{
		name:   "Stock",
		header: []any{"Name", "Quantity", "Unit", "Level", "Added"},
	}

	for _, i := range b.Stock {
		stock.rows = append(stock.rows, []any{
			i.Name, i.Quantity.InexactFloat64(), i.Unit, string(i.Level()), i.AddedAt.Format(dateLayout),
		})
	}

	maint := sheet{
		name:   "Maintenance",
		header: []any{"Date", "Service", "Duration", "Description", "Amount"},
	}

	for _, m := range b.Maintenance {
		maint.rows = append(maint.rows, []any{
			m.Date.Format(dateLayout), m.Service, m.Duration, m.Description, money(m.Amount),
		})
	}

	sold := sheet{
		name:   "Sales",
		header: []any{"Date", "Article", "Quantity", "Unit price", "Line total", "Sale total"},
	}

	for _, s := range b.Sales {
		for _, l := range s.Lines {
			sold.rows = append(sold.rows, []any{
				s.Date.Format(dateLayout), l.Article, l.Quantity.InexactFloat64(),
				money(l.UnitPrice), money(l.Extension()), money(s.Total),
			})
		}
	}

	articles := sheet{
		name:   "Articles",
		header: []any{"Article", "Stock item", "Quantity per unit"},
	}

	for _, a := range b.Articles {
		if len(a.Components) == 0 {
			articles.rows = append(articles.rows, []any{a.Name, "", nil})
		}

		for _, c := range a.Components {
			articles.rows = append(articles.rows, []any{a.Name, c.StockItemName, c.Quantity.InexactFloat64()})
		}
	}

	t := b.Totals
	summary := sheet{
		name:   "Summary",
		header: []any{"Period", b.Period.Label()},
		rows: [][]any{
			{"Revenue", money(t.Revenue)},
			{"Sales", t.SaleCount},
			{"Salaries", money(t.Salaries)},
			{"Purchases (paid)", money(t.Purchases)},
			{"Maintenance", money(t.Maintenance)},
			{"Total expense", money(t.TotalExpense)},
			{"Profit", money(t.Profit)},
			{"Profit margin (%)", t.ProfitMargin.InexactFloat64()},
		},
	}

	return []sheet{employees, purchases, stock, maint, sold, articles, summary}
}

func money(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
