// Package request parses the raw create-invocation arguments into a
// structured request.
//
// The root invocation is deliberately permissive: unknown flags are ignored
// rather than rejected so that older scripts keep working when new options
// appear. Because of that the root command bypasses pflag and performs its
// own scan here; subcommands still use regular cobra flag parsing.
package request

import "strings"

// ParsedArgs is the normalized form of the raw create-invocation arguments.
// It is built once at startup and never mutated afterwards.
type ParsedArgs struct {
	// TargetDir is the first positional argument, normalized via
	// FormatTargetDir. Empty means "not supplied".
	TargetDir string

	// Template is the value of -t/--template, if any. It is not validated
	// here; an unknown id simply re-activates the interactive steps.
	Template string

	// LogLevel is the value of --log-level, if any.
	LogLevel string

	// Help reports whether -h or --help appeared anywhere in the arguments.
	Help bool
}

// valueFlags maps flag spellings that consume one value to the field they
// populate.
var valueFlags = map[string]string{
	"-t":          "template",
	"--template":  "template",
	"--log-level": "log-level",
}

// Normalize parses raw process arguments (excluding the program name) into
// a ParsedArgs. The first non-flag token becomes the candidate target
// directory; -h/--help is recognized at any position; unrecognized flags
// are ignored.
func Normalize(raw []string) ParsedArgs {
	var parsed ParsedArgs

	setValue := func(field, value string) {
		switch field {
		case "template":
			parsed.Template = value
		case "log-level":
			parsed.LogLevel = value
		}
	}

	for i := 0; i < len(raw); i++ {
		arg := raw[i]

		switch {
		case arg == "-h" || arg == "--help":
			parsed.Help = true
		case strings.HasPrefix(arg, "-"):
			name, value, hasValue := strings.Cut(arg, "=")
			field, known := valueFlags[name]
			if !known {
				continue
			}
			if !hasValue && i+1 < len(raw) {
				i++
				value = raw[i]
			}
			setValue(field, value)
		case parsed.TargetDir == "":
			parsed.TargetDir = FormatTargetDir(arg)
		}
	}

	return parsed
}

// FormatTargetDir trims surrounding whitespace and strips trailing path
// separators. It is idempotent and may return an empty string, in which
// case callers fall back to the default project name.
func FormatTargetDir(dir string) string {
	// Stripping a separator can expose more trailing whitespace, so repeat
	// until stable.
	for {
		trimmed := strings.TrimRight(strings.TrimSpace(dir), "/\\")
		if trimmed == dir {
			return trimmed
		}
		dir = trimmed
	}
}
