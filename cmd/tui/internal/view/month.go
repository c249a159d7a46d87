package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/bistro/internal/period"
)

// MonthChoice is a predefined or custom period selection.
type MonthChoice int

const (
	MonthCurrent MonthChoice = iota
	MonthPrevious
	MonthCustom
)

func (c MonthChoice) String() string {
	switch c {
	case MonthCurrent:
		return "This Month"
	case MonthPrevious:
		return "Last Month"
	case MonthCustom:
		return "Other Month"
	}

	return "Unknown"
}

// asOf returns a date inside the chosen month.
func (c MonthChoice) asOf(now time.Time) time.Time {
	if c == MonthPrevious {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	}

	return now
}

// MonthSelectedMsg is emitted when the user has picked a period. AsOf is the
// date to report on: today for the current month, the last day otherwise.
type MonthSelectedMsg struct {
	Period period.Key
	AsOf   time.Time
}

type monthState int

const (
	monthStateSelect monthState = iota
	monthStateCustom
)

// MonthPicker is a reusable component for selecting a period.
type MonthPicker struct {
	state    monthState
	selected MonthChoice
	input    textinput.Model
	now      func() time.Time

	err error
}

func NewMonthPicker() MonthPicker {
	in := textinput.New()
	in.Placeholder = "YYYY-MM"
	in.CharLimit = 7
	in.Width = 9
	in.Prompt = "Month: "

	return MonthPicker{
		state: monthStateSelect,
		input: in,
		now:   time.Now,
	}
}

func (m MonthPicker) Init() tea.Cmd {
	return nil
}

func (m MonthPicker) Update(msg tea.Msg) (MonthPicker, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case monthStateSelect:
			return m.updateSelect(keyMsg)
		case monthStateCustom:
			return m.updateCustom(keyMsg)
		}
	}

	return m, nil
}

func (m MonthPicker) updateSelect(msg tea.KeyMsg) (MonthPicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.selected > MonthCurrent {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < MonthCustom {
			m.selected++
		}
	case tea.KeyEnter:
		if m.selected == MonthCustom {
			m.state = monthStateCustom
			m.input.Focus()

			return m, textinput.Blink
		}

		asOf := m.selected.asOf(m.now())

		return m, func() tea.Msg {
			return MonthSelectedMsg{Period: period.Of(asOf), AsOf: asOf}
		}
	}

	return m, nil
}

func (m MonthPicker) updateCustom(msg tea.KeyMsg) (MonthPicker, tea.Cmd) {
	switch msg.String() {
	case "enter":
		key, err := period.Parse(m.input.Value())
		if err != nil {
			m.err = fmt.Errorf("invalid month (YYYY-MM)")
			return m, nil
		}

		m.err = nil
		asOf := key.End()

		if key == period.Of(m.now()) {
			asOf = m.now()
		}

		return m, func() tea.Msg {
			return MonthSelectedMsg{Period: key, AsOf: asOf}
		}

	case "esc":
		m.state = monthStateSelect
		m.err = nil

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m MonthPicker) View() string {
	errStr := ""
	if m.err != nil {
		errStr = errorStyle.Render(fmt.Sprintf("\n\nError: %v", m.err))
	}

	if m.state == monthStateCustom {
		return fmt.Sprintf("Enter Month:\n\n%s\n\n(Enter to confirm, Esc to back)%s", m.input.View(), errStr)
	}

	s := "Select Month:\n\n"
	for c := MonthCurrent; c <= MonthCustom; c++ {
		cursor := " "
		if m.selected == c {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, c.String())
	}

	s += "\n(Enter to select, Esc to back)"

	return s + errStr
}

// IsSelecting returns true if the picker is in the selection state (not custom input).
func (m MonthPicker) IsSelecting() bool {
	return m.state == monthStateSelect
}

// Reset returns the picker to its initial selection state.
func (m *MonthPicker) Reset() {
	m.state = monthStateSelect
	m.selected = MonthCurrent
	m.err = nil
	m.input.SetValue("")
}
