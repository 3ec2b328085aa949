// Package prompt implements the interactive resolution pipeline: an
// ordered list of steps, each with an activation predicate and a choice
// generator evaluated against the answers collected so far. A driver walks
// the steps in order, skipping inactive ones, and threads an accumulating
// state record. Later steps may depend on earlier answers, never the
// reverse.
package prompt

import (
	"errors"
	"fmt"

	"github.com/appforge/appforge/internal/catalog"
	"github.com/appforge/appforge/internal/request"
)

// ErrCancelled is returned when the user aborts an active prompt. The
// whole resolution unwinds immediately; no partial answers are used.
var ErrCancelled = errors.New("operation cancelled")

// Resolution is the final outcome of the interactive phase.
type Resolution struct {
	TargetDir  string
	TemplateID string
}

// State accumulates answers while the steps run. It is owned by a single
// Resolve call and discarded afterwards.
type State struct {
	TargetDir string
	Framework *catalog.Framework
	Variant   string
}

// Choice is one selectable option in a picker step.
type Choice struct {
	ID    string
	Label string
	Color catalog.ColorTag
}

// Step is one question in the pipeline. Choices is nil for free-text
// steps. Active and Choices are functions of the current state so that a
// step's visibility and options can depend on earlier answers.
type Step struct {
	Title   string
	Active  func(*State) bool
	Choices func(*State) []Choice
	Default func(*State) string
	Apply   func(*State, string)
}

// Runner abstracts the terminal interaction so the driver can be tested
// without a TTY. The first choice is the default-highlighted one.
// Implementations return ErrCancelled when the user aborts.
type Runner interface {
	Input(title, fallback string) (string, error)
	Select(title string, choices []Choice) (string, error)
}

// Resolve runs the step pipeline and returns the chosen target directory
// and template identifier.
func Resolve(parsed request.ParsedArgs, cat *catalog.Catalog, defaultName string, r Runner) (Resolution, error) {
	state := &State{TargetDir: request.FormatTargetDir(parsed.TargetDir)}

	for _, step := range buildSteps(parsed, cat, defaultName) {
		if !step.Active(state) {
			continue
		}

		var answer string
		var err error

		if step.Choices == nil {
			answer, err = r.Input(step.Title, step.Default(state))
		} else {
			choices := step.Choices(state)
			if len(choices) == 0 {
				continue
			}
			answer, err = r.Select(step.Title, choices)
		}
		if err != nil {
			return Resolution{}, fmt.Errorf("%s: %w", step.Title, err)
		}

		step.Apply(state, answer)
	}

	templateID := state.Variant
	if templateID == "" {
		templateID = parsed.Template
	}

	targetDir := state.TargetDir
	if targetDir == "" {
		targetDir = defaultName
	}

	return Resolution{TargetDir: targetDir, TemplateID: templateID}, nil
}

// buildSteps returns the three-step pipeline in its fixed order: project
// name, framework, variant.
func buildSteps(parsed request.ParsedArgs, cat *catalog.Catalog, defaultName string) []Step {
	templateKnown := cat.IsValid(parsed.Template)

	return []Step{
		{
			Title: "Project name",
			Active: func(*State) bool {
				return request.FormatTargetDir(parsed.TargetDir) == ""
			},
			Default: func(*State) string {
				return defaultName
			},
			Apply: func(s *State, answer string) {
				s.TargetDir = request.FormatTargetDir(answer)
			},
		},
		{
			Title: "Select a framework",
			Active: func(*State) bool {
				return parsed.Template == "" || !templateKnown
			},
			Choices: func(*State) []Choice {
				frameworks := cat.Frameworks()
				choices := make([]Choice, 0, len(frameworks))
				for _, fw := range frameworks {
					choices = append(choices, Choice{ID: fw.ID, Label: fw.DisplayName, Color: fw.Color})
				}
				return choices
			},
			Apply: func(s *State, answer string) {
				for _, fw := range cat.Frameworks() {
					if fw.ID == answer {
						chosen := fw
						s.Framework = &chosen
						return
					}
				}
			},
		},
		{
			Title: "Select a variant",
			Active: func(s *State) bool {
				return s.Framework != nil
			},
			Choices: func(s *State) []Choice {
				choices := make([]Choice, 0, len(s.Framework.Variants))
				for _, v := range s.Framework.Variants {
					choices = append(choices, Choice{ID: v.ID, Label: v.DisplayName, Color: v.Color})
				}
				return choices
			},
			Apply: func(s *State, answer string) {
				s.Variant = answer
			},
		},
	}
}
