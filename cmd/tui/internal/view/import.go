package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/bistro/internal/importer"
	"github.com/MrJamesThe3rd/bistro/internal/importer/sheet"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateKindSelect importState = iota
	importStateFilePick
	importStateParsing
	importStatePreview
	importStateImporting
	importStateResult
)

type kindOption struct {
	label string
	kind  sheet.Kind
}

type ImportModel struct {
	CommonModel
	importService *importer.Service

	state       importState
	filePicker  filepicker.Model
	kindOptions []kindOption
	kindCursor  int
	path        string

	preview     *sheet.Result
	previewList list.Model

	status string
	err    error
}

func NewImportModel(impSvc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		importService: impSvc,
		filePicker:    fp,
		kindOptions: []kindOption{
			{label: "Detect from header"},
			{label: "Purchases (achats)", kind: sheet.KindPurchases},
			{label: "Sales (recettes)", kind: sheet.KindSales},
		},
	}
}

func (m ImportModel) Title() string { return "Import Spreadsheet" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStatePreview {
		return "Enter: import | Esc: cancel"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) kind() sheet.Kind {
	return m.kindOptions[m.kindCursor].kind
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		switch m.state {
		case importStateKindSelect:
			return m.updateKindSelect(msg)
		case importStatePreview:
			return m.updatePreview(msg)
		}

	case parseResultMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		if k := m.kind(); k != "" && k != msg.result.Kind {
			m.state = importStateResult
			m.err = importer.ErrKindMismatch
			m.status = fmt.Sprintf("Error: the file holds %s, not %s.", msg.result.Kind, k)

			return m, nil
		}

		m.preview = msg.result
		m.state = importStatePreview
		m.previewList = newPreviewList(msg.result)

		return m, nil

	case importResultMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d purchases and %d sales (%d lines skipped).",
			msg.summary.Purchases, msg.summary.Sales, len(msg.summary.Skipped))

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.path = path
		m.state = importStateParsing
		m.status = fmt.Sprintf("Reading %s...", path)

		return m, m.parseCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick, importStatePreview, importStateResult:
		m.state = importStateKindSelect
		m.preview = nil
		m.err = nil
		m.status = ""

		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateKindSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.kindCursor > 0 {
			m.kindCursor--
		}
	case tea.KeyDown:
		if m.kindCursor < len(m.kindOptions)-1 {
			m.kindCursor++
		}
	case tea.KeyEnter:
		m.state = importStateFilePick
		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m ImportModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing %d rows...", len(m.preview.Rows))

		return m, m.importCmd(m.path, m.preview.Kind)
	}

	var cmd tea.Cmd
	m.previewList, cmd = m.previewList.Update(msg)

	return m, cmd
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateKindSelect:
		return m.viewKindSelect()
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select file to import (%s):\n\n%s", m.kindOptions[m.kindCursor].label, m.filePicker.View()),
		)
	case importStateParsing, importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStatePreview:
		return lipgloss.NewStyle().Padding(1).Render(m.viewPreview())
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewKindSelect() string {
	s := "What does the file hold?\n\n"

	for i, opt := range m.kindOptions {
		cursor := " "
		if i == m.kindCursor {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, opt.label)
	}

	return lipgloss.NewStyle().Padding(2).Render(s)
}

func (m ImportModel) viewPreview() string {
	skipped := ""
	for _, e := range m.preview.Skipped {
		skipped += mutedStyle.Render("  skipped "+e.Error()) + "\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.previewList.View(),
		skipped,
	)
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(errorStyle.Render(m.status) + "\n\n(Esc to go back)")
	}

	return style.Render(successStyle.Render(m.status) + "\n\n(Esc to go back)")
}

type parseResultMsg struct {
	result *sheet.Result
	err    error
}

type importResultMsg struct {
	summary *importer.Summary
	err     error
}

func (m ImportModel) parseCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return parseResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.importService.Parse(ctx, f)

		return parseResultMsg{result: result, err: err}
	}
}

func (m ImportModel) importCmd(path string, kind sheet.Kind) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		summary, err := m.importService.Import(ctx, kind, f)

		return importResultMsg{summary: summary, err: err}
	}
}

// Preview list

type rowItem struct {
	row  sheet.Row
	kind sheet.Kind
}

func (i rowItem) Title() string       { return i.row.Article }
func (i rowItem) Description() string { return "" }
func (i rowItem) FilterValue() string { return i.row.Article }

type rowDelegate struct{}

func (d rowDelegate) Height() int                             { return 1 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(rowItem)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	row := item.row
	line := fmt.Sprintf("%s%s  %-24s %8s %-6s %14s",
		cursor, FormatDate(row.Date), row.Article, row.Quantity.String(), row.Unit, FormatAmount(row.Price))

	if item.kind == sheet.KindPurchases && !row.Paid {
		line += "  unpaid"
	}

	fmt.Fprintln(w, line)
}

func newPreviewList(result *sheet.Result) list.Model {
	items := make([]list.Item, len(result.Rows))
	for i, row := range result.Rows {
		items[i] = rowItem{row: row, kind: result.Kind}
	}

	l := list.New(items, rowDelegate{}, 90, 18)
	l.Title = fmt.Sprintf("%s: %d rows (%s format)", result.Kind, len(result.Rows), result.Profile)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return l
}
