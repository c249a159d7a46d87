package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/bistro/internal/archive"
)

type ArchivesModel struct {
	CommonModel
	svc *archive.Service

	table    table.Model
	archives []*archive.MonthlyArchive
	detail   *archive.MonthlyArchive
	loading  bool
	err      error
}

func NewArchivesModel(svc *archive.Service) ArchivesModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Month", Width: 16},
			{Title: "Archived", Width: 12},
			{Title: "Staff", Width: 6},
			{Title: "Revenue", Width: 16},
			{Title: "Expense", Width: 16},
			{Title: "Profit", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return ArchivesModel{svc: svc, table: t, loading: true}
}

func (m ArchivesModel) Title() string { return "Archives" }

func (m ArchivesModel) ShortHelp() string {
	if m.detail != nil {
		return "Esc: close"
	}

	return "Esc: back | Enter: details"
}

func (m ArchivesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ArchivesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadArchivesMsg:
		m.loading = false
		m.err = msg.err
		m.archives = msg.archives
		m.refreshTable()

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.detail != nil {
				m.detail = nil
				return m, nil
			}

			return m, Back
		case "enter":
			if idx := m.table.Cursor(); idx >= 0 && idx < len(m.archives) {
				m.detail = m.archives[idx]
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *ArchivesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.archives))
	for _, a := range m.archives {
		rows = append(rows, table.Row{
			a.Period.Label(),
			FormatDate(a.ArchivedAt),
			fmt.Sprint(len(a.Employees)),
			FormatAmount(a.Revenues.Sales),
			FormatAmount(a.Expenses.Total),
			FormatAmount(a.Profit()),
		})
	}

	m.table.SetRows(rows)
}

func (m ArchivesModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.loading {
		return style.Render("Loading archives...")
	}

	if m.err != nil {
		return style.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if len(m.archives) == 0 {
		return style.Render("No month has been archived yet.\n\n(Esc to go back)")
	}

	if m.detail != nil {
		return style.Render(archiveDetail(m.detail))
	}

	return style.Render(m.table.View())
}

func archiveDetail(a *archive.MonthlyArchive) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(a.Period.Label()) + "\n\n")
	fmt.Fprintf(&b, "Sales        %18s  (%d)\n", FormatAmount(a.Revenues.Sales), a.Revenues.SaleCount)
	fmt.Fprintf(&b, "Salaries     %18s\n", FormatAmount(a.Expenses.Salaries))
	fmt.Fprintf(&b, "Purchases    %18s\n", FormatAmount(a.Expenses.Purchases))
	fmt.Fprintf(&b, "Maintenance  %18s\n", FormatAmount(a.Expenses.Maintenance))
	fmt.Fprintf(&b, "Profit       %18s\n\n", FormatAmount(a.Profit()))

	b.WriteString("Employees\n")

	for _, e := range a.Employees {
		fmt.Fprintf(&b, "  %-24s %3d days  %3d absent  %16s\n",
			e.FullName(), e.DaysWorked, e.Absences, FormatAmount(e.NetSalary()))
	}

	return b.String()
}

type loadArchivesMsg struct {
	archives []*archive.MonthlyArchive
	err      error
}

func (m ArchivesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		archives, err := m.svc.List(ctx)

		return loadArchivesMsg{archives: archives, err: err}
	}
}
