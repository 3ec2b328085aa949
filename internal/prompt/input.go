package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/appforge/appforge/internal/request"
	"github.com/appforge/appforge/internal/ui"
)

// inputModel is the free-text prompt for the project name. The footer
// shows the normalized target directory recomputed on every keystroke.
type inputModel struct {
	title     string
	fallback  string
	input     textinput.Model
	done      bool
	cancelled bool
}

func newInputModel(title, fallback string) inputModel {
	ti := textinput.New()
	ti.Placeholder = fallback
	ti.Focus()

	return inputModel{
		title:    title,
		fallback: fallback,
		input:    ti,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	target := m.value()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", ui.Title.Render(m.title+":"))
	fmt.Fprintf(&b, "%s\n", m.input.View())
	fmt.Fprintf(&b, "%s\n", ui.Dim.Render("will scaffold into ./"+target))

	return b.String()
}

// value returns the normalized working target directory, falling back to
// the default name when the current input normalizes to empty.
func (m inputModel) value() string {
	if v := request.FormatTargetDir(m.input.Value()); v != "" {
		return v
	}

	return m.fallback
}
