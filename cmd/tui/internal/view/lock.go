package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/bistro/internal/http/auth"
)

// UnlockedMsg is emitted once the access PIN has been accepted.
type UnlockedMsg struct{}

// LockModel asks for the access PIN before the menu is shown.
type LockModel struct {
	CommonModel
	form *huh.Form
	pin  string
}

func NewLockModel(a *auth.Authenticator) LockModel {
	m := LockModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("pin").
				Title("Access PIN").
				EchoMode(huh.EchoModePassword).
				Value(&m.pin).
				Validate(func(pin string) error {
					_, _, err := a.Unlock(pin)
					return err
				}),
		),
	).WithWidth(30).WithShowHelp(false)

	return m
}

func (m LockModel) Title() string     { return "Locked" }
func (m LockModel) ShortHelp() string { return "Enter: unlock | Ctrl+C: quit" }

func (m LockModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, func() tea.Msg { return UnlockedMsg{} }
	}

	return m, cmd
}

func (m LockModel) View() string {
	return lipgloss.NewStyle().Padding(2).Render(headerStyle.Render("Bistro") + "\n\n" + m.form.View())
}
