package prompt

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// TTYRunner renders prompts as terminal programs.
type TTYRunner struct {
	// In and Out override the terminal streams. Nil means the process
	// defaults.
	In  io.Reader
	Out io.Writer
}

func (r *TTYRunner) programOptions() []tea.ProgramOption {
	var opts []tea.ProgramOption
	if r.In != nil {
		opts = append(opts, tea.WithInput(r.In))
	}
	if r.Out != nil {
		opts = append(opts, tea.WithOutput(r.Out))
	}

	return opts
}

// Input runs the free-text prompt. An empty submission resolves to the
// fallback value.
func (r *TTYRunner) Input(title, fallback string) (string, error) {
	res, err := tea.NewProgram(newInputModel(title, fallback), r.programOptions()...).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	m := res.(inputModel)
	if m.cancelled {
		return "", ErrCancelled
	}

	if v := strings.TrimSpace(m.input.Value()); v != "" {
		return v, nil
	}

	return fallback, nil
}

// Select runs the picker prompt and returns the chosen id.
func (r *TTYRunner) Select(title string, choices []Choice) (string, error) {
	res, err := tea.NewProgram(newSelectModel(title, choices), r.programOptions()...).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	m := res.(selectModel)
	if m.cancelled {
		return "", ErrCancelled
	}

	return m.selected().ID, nil
}
