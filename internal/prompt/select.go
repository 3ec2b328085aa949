package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appforge/appforge/internal/ui"
)

// selectModel is the picker used for the framework and variant steps. The
// first choice starts highlighted.
type selectModel struct {
	title     string
	choices   []Choice
	index     int
	done      bool
	cancelled bool
}

func newSelectModel(title string, choices []Choice) selectModel {
	return selectModel{
		title:   title,
		choices: choices,
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.index > 0 {
			m.index--
		}
	case "down", "j":
		if m.index < len(m.choices)-1 {
			m.index++
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	case "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}

	return m, nil
}

func (m selectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", ui.Title.Render(m.title+":"))

	for i, choice := range m.choices {
		label := ui.Render(choice.Color, choice.Label)
		if i == m.index {
			fmt.Fprintf(&b, "%s %s\n", ui.Cursor.Render(">"), label)
		} else {
			fmt.Fprintf(&b, "  %s\n", label)
		}
	}

	fmt.Fprintf(&b, "%s\n", ui.Dim.Render("up/down to move, enter to select, esc to cancel"))

	return b.String()
}

func (m selectModel) selected() Choice {
	return m.choices[m.index]
}
