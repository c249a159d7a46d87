package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/bistro/internal/personnel"
)

type personnelState int

const (
	personnelStateBrowse personnelState = iota
	personnelStatePresence
	personnelStateAdvance
	personnelStateHire
)

type PersonnelModel struct {
	CommonModel
	svc *personnel.Service

	state     personnelState
	table     table.Model
	employees []*personnel.Employee
	form      *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formDate      string
	formStatus    personnel.Status
	formAmount    string
	formFirstName string
	formLastName  string
	formRole      string
}

func NewPersonnelModel(svc *personnel.Service) PersonnelModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Role", Width: 12},
		{Title: "Worked", Width: 7},
		{Title: "Absent", Width: 7},
		{Title: "Sick Left", Width: 9},
		{Title: "Advance", Width: 14},
		{Title: "Net Pay", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return PersonnelModel{
		svc:     svc,
		table:   t,
		loading: true,
	}
}

func (m PersonnelModel) Title() string { return "Personnel" }

func (m PersonnelModel) ShortHelp() string {
	if m.state != personnelStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | p: presence | a: advance | n: hire | r: refresh"
}

func (m PersonnelModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m PersonnelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPersonnelMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.employees = msg.employees
		m.refreshTable()

		return m, nil

	case personnelSaveMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		}

		m.state = personnelStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == personnelStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m PersonnelModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "p":
			if m.selected() == nil {
				return m, nil
			}

			return m.openForm(personnelStatePresence, m.presenceForm())
		case "a":
			if m.selected() == nil {
				return m, nil
			}

			return m.openForm(personnelStateAdvance, m.advanceForm())
		case "n":
			return m.openForm(personnelStateHire, m.hireForm())
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m PersonnelModel) selected() *personnel.Employee {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.employees) {
		return nil
	}

	return m.employees[idx]
}

func (m PersonnelModel) openForm(state personnelState, form *huh.Form) (tea.Model, tea.Cmd) {
	m.state = state
	m.form = form
	m.status = ""
	m.table.Blur()

	return m, m.form.Init()
}

func (m *PersonnelModel) presenceForm() *huh.Form {
	m.formDate = FormatDate(time.Now())
	m.formStatus = personnel.StatusPresent

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate).
				Validate(validDate),

			huh.NewSelect[personnel.Status]().
				Key("status").
				Title("Status").
				Options(
					huh.NewOption("Present", personnel.StatusPresent),
					huh.NewOption("Absent", personnel.StatusAbsent),
					huh.NewOption("Sick", personnel.StatusSick),
					huh.NewOption("Day off", personnel.StatusOff),
				).
				Value(&m.formStatus),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m *PersonnelModel) advanceForm() *huh.Form {
	m.formAmount = ""

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Advance ("+currency+")").
				Placeholder("50.000").
				Value(&m.formAmount).
				Validate(validAmount),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m *PersonnelModel) hireForm() *huh.Form {
	m.formFirstName, m.formLastName, m.formRole, m.formAmount = "", "", "", ""

	notEmpty := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("cannot be empty")
		}

		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("first_name").Title("First name").Value(&m.formFirstName).Validate(notEmpty),
			huh.NewInput().Key("last_name").Title("Last name").Value(&m.formLastName).Validate(notEmpty),
			huh.NewInput().Key("role").Title("Role").Placeholder("Serveur").Value(&m.formRole),
			huh.NewInput().
				Key("salary").
				Title("Daily rate ("+currency+")").
				Value(&m.formAmount).
				Validate(validAmount),
		),
	).WithWidth(45).WithShowHelp(false)
}

func validDate(s string) error {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}

	return nil
}

func validAmount(s string) error {
	_, err := parseCents(s)
	return err
}

// parseCents reads a decimal amount typed by the user, accepting a comma as separator.
func parseCents(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
	if err != nil || d.Sign() < 0 {
		return 0, fmt.Errorf("enter a positive amount")
	}

	return d.Shift(2).Round(0).IntPart(), nil
}

func (m PersonnelModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = personnelStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m PersonnelModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading employees...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	total := personnel.TotalNetSalary(m.employees)
	header := fmt.Sprintf("%d employees | Total net pay: %s", len(m.employees), headerStyle.Render(FormatAmount(total)))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.form != nil {
		title := "Hire Employee"
		if e := m.selected(); e != nil && m.state != personnelStateHire {
			title = e.FullName()
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *PersonnelModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.employees))
	for _, e := range m.employees {
		rows = append(rows, table.Row{
			e.FullName(),
			e.Role,
			fmt.Sprint(e.DaysWorked),
			fmt.Sprint(e.Absences),
			fmt.Sprintf("%d/%d", e.SickBalance, e.SickAllowance),
			FormatAmount(e.Advance),
			FormatAmount(e.NetSalary()),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadPersonnelMsg struct {
	employees []*personnel.Employee
	err       error
}

func (m PersonnelModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		employees, err := m.svc.List(ctx)

		return loadPersonnelMsg{employees: employees, err: err}
	}
}

type personnelSaveMsg struct {
	status string
	err    error
}

func (m PersonnelModel) saveCmd() tea.Cmd {
	state := m.state
	e := m.selected()
	date, status, amount := m.formDate, m.formStatus, m.formAmount
	params := personnel.HireParams{FirstName: m.formFirstName, LastName: m.formLastName, Role: m.formRole}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		switch state {
		case personnelStatePresence:
			day, err := time.Parse(time.DateOnly, date)
			if err != nil {
				return personnelSaveMsg{err: err}
			}

			if _, err := m.svc.AddPresence(ctx, e.ID, day, status); err != nil {
				return personnelSaveMsg{err: err}
			}

			return personnelSaveMsg{status: fmt.Sprintf("%s marked %s on %s", e.FullName(), status, date)}

		case personnelStateAdvance:
			cents, err := parseCents(amount)
			if err != nil {
				return personnelSaveMsg{err: err}
			}

			if _, err := m.svc.AddAdvance(ctx, e.ID, cents); err != nil {
				return personnelSaveMsg{err: err}
			}

			return personnelSaveMsg{status: fmt.Sprintf("Advance of %s given to %s", FormatAmount(cents), e.FullName())}

		case personnelStateHire:
			cents, err := parseCents(amount)
			if err != nil {
				return personnelSaveMsg{err: err}
			}

			params.SalaryPerDay = cents

			hired, err := m.svc.Hire(ctx, params)
			if err != nil {
				return personnelSaveMsg{err: err}
			}

			return personnelSaveMsg{status: hired.FullName() + " hired"}
		}

		return personnelSaveMsg{}
	}
}
