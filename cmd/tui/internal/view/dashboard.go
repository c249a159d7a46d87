package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/bistro/internal/dashboard"
	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/report"
)

type DashboardModel struct {
	CommonModel
	reports *report.Service
	history *dashboard.Service

	period  period.Key
	totals  report.Totals
	table   table.Model
	loading bool
	err     error
}

func NewDashboardModel(reports *report.Service, history *dashboard.Service) DashboardModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Month", Width: 16},
			{Title: "Resets", Width: 7},
			{Title: "Revenue", Width: 16},
			{Title: "Expense", Width: 16},
			{Title: "Profit", Width: 16},
		}),
		table.WithHeight(10),
	)

	return DashboardModel{
		reports: reports,
		history: history,
		table:   t,
		loading: true,
	}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDashboardMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}

		m.period = msg.period
		m.totals = msg.totals
		m.table.SetRows(historyRows(msg.summaries))

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func historyRows(summaries []*dashboard.PeriodSummary) []table.Row {
	rows := make([]table.Row, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, table.Row{
			s.Period.Label(),
			fmt.Sprint(s.Points),
			FormatAmount(s.Revenue),
			FormatAmount(s.Expense),
			FormatAmount(s.Profit),
		})
	}

	return rows
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(m.period.Label()),
		"",
		totalsView(m.totals),
		"",
		"History",
		m.table.View(),
	))
}

func totalsView(t report.Totals) string {
	profit := successStyle.Render(FormatAmount(t.Profit))
	if t.Profit < 0 {
		profit = errorStyle.Render(FormatAmount(t.Profit))
	}

	lines := []string{
		fmt.Sprintf("Revenue      %18s  (%d sales)", FormatAmount(t.Revenue), t.SaleCount),
		fmt.Sprintf("Salaries     %18s", FormatAmount(t.Salaries)),
		fmt.Sprintf("Purchases    %18s", FormatAmount(t.Purchases)),
		fmt.Sprintf("Maintenance  %18s", FormatAmount(t.Maintenance)),
		mutedStyle.Render(strings.Repeat("-", 32)),
		fmt.Sprintf("Expenses     %18s", FormatAmount(t.TotalExpense)),
		fmt.Sprintf("Profit       %18s  (%s%%)", profit, t.ProfitMargin.StringFixed(2)),
	}

	return strings.Join(lines, "\n")
}

type loadDashboardMsg struct {
	period    period.Key
	totals    report.Totals
	summaries []*dashboard.PeriodSummary
	err       error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		now := time.Now()

		totals, err := m.reports.Totals(ctx, now)
		if err != nil {
			return loadDashboardMsg{err: err}
		}

		summaries, err := m.history.ByPeriod(ctx)
		if err != nil {
			return loadDashboardMsg{err: err}
		}

		return loadDashboardMsg{period: period.Of(now), totals: totals, summaries: summaries}
	}
}
