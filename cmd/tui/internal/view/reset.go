package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/bistro/internal/archive"
	"github.com/MrJamesThe3rd/bistro/internal/export"
	"github.com/MrJamesThe3rd/bistro/internal/http/auth"
	"github.com/MrJamesThe3rd/bistro/internal/period"
	"github.com/MrJamesThe3rd/bistro/internal/report"
)

const resetTimeout = time.Minute

type resetState int

const (
	resetStateLoading resetState = iota
	resetStateConfirm
	resetStateRunning
	resetStateResult
)

// ResetModel previews the period to close and runs the monthly reset once
// the confirmation PIN is entered.
type ResetModel struct {
	CommonModel
	reports     *report.Service
	archives    *archive.Service
	exports     *export.Service
	workbookDir string
	auth        *auth.Authenticator

	state   resetState
	asOf    time.Time
	preview *report.Snapshot
	form    *huh.Form
	pin     string
	spinner spinner.Model

	result   *archive.ResetResult
	workbook string
	err      error
}

// NewResetModel builds the reset view. The workbook of the closing month is
// written to workbookDir before anything is archived.
func NewResetModel(
	reports *report.Service,
	archives *archive.Service,
	exports *export.Service,
	workbookDir string,
	authenticator *auth.Authenticator,
) ResetModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ResetModel{
		reports:     reports,
		archives:    archives,
		exports:     exports,
		workbookDir: workbookDir,
		auth:        authenticator,
		asOf:        time.Now(),
		spinner:     s,
	}
}

func (m ResetModel) Title() string { return "Monthly Reset" }

func (m ResetModel) ShortHelp() string {
	if m.state == resetStateRunning {
		return "Archiving..."
	}

	return "Esc: back"
}

func (m ResetModel) Init() tea.Cmd {
	return m.previewCmd()
}

func (m ResetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resetPreviewMsg:
		if msg.err != nil {
			m.state = resetStateResult
			m.err = msg.err

			return m, nil
		}

		m.preview = msg.snapshot
		m.form = m.pinForm()
		m.state = resetStateConfirm

		return m, m.form.Init()

	case resetDoneMsg:
		m.state = resetStateResult
		m.result = msg.result
		m.workbook = msg.workbook
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc && m.state != resetStateRunning {
			return m, Back
		}
	}

	switch m.state {
	case resetStateConfirm:
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		m.state = resetStateRunning

		return m, tea.Batch(m.spinner.Tick, m.resetCmd())

	case resetStateRunning:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *ResetModel) pinForm() *huh.Form {
	m.pin = ""

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("pin").
				Title("Confirmation PIN").
				EchoMode(huh.EchoModePassword).
				Value(&m.pin).
				Validate(m.auth.Confirm),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (m ResetModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case resetStateLoading:
		return style.Render("Computing the month to archive...")

	case resetStateConfirm:
		key := period.Of(m.asOf)

		return style.Render(lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render("Archive "+key.Label()),
			"",
			fmt.Sprintf("%d employees will be archived and their counters reset.", len(m.preview.Employees)),
			"Purchases, maintenance and sales move to history.",
			"The workbook is saved to "+m.workbookDir+" first.",
			"",
			totalsView(m.preview.Totals),
			"",
			m.form.View(),
		))

	case resetStateRunning:
		return style.Render(fmt.Sprintf("%s Archiving %s...", m.spinner.View(), period.Of(m.asOf).Label()))

	case resetStateResult:
		if m.err != nil {
			return style.Render(errorStyle.Render(fmt.Sprintf("Reset failed, nothing was archived: %v", m.err)) + "\n\n(Esc to go back)")
		}

		a := m.result.Archive

		return style.Render(lipgloss.JoinVertical(lipgloss.Left,
			successStyle.Bold(true).Render(a.Period.Label()+" archived"),
			"",
			fmt.Sprintf("Revenue %s, expenses %s, profit %s.",
				FormatAmount(a.Revenues.Sales), FormatAmount(a.Expenses.Total), FormatAmount(a.Profit())),
			"Now tracking "+a.Period.Next().Label()+".",
			mutedStyle.Render("Workbook: "+m.workbook),
			"",
			"(Esc to go back)",
		))
	}

	return ""
}

type resetPreviewMsg struct {
	snapshot *report.Snapshot
	err      error
}

type resetDoneMsg struct {
	result   *archive.ResetResult
	workbook string
	err      error
}

func (m ResetModel) previewCmd() tea.Cmd {
	asOf := m.asOf

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		snap, err := m.reports.Snapshot(ctx, asOf)

		return resetPreviewMsg{snapshot: snap, err: err}
	}
}

func (m ResetModel) resetCmd() tea.Cmd {
	asOf := m.asOf

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
		defer cancel()

		_, workbook, err := m.exports.SaveWorkbook(ctx, asOf, m.workbookDir)
		if err != nil {
			return resetDoneMsg{err: fmt.Errorf("saving workbook: %w", err)}
		}

		result, err := m.archives.PerformMonthlyReset(ctx, asOf)

		return resetDoneMsg{result: result, workbook: workbook, err: err}
	}
}
