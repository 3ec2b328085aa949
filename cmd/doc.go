// Package cmd provides the command-line interface for appforge.
//
// The root invocation runs the create pipeline: normalize the raw
// arguments, resolve the target directory and template through the
// interactive prompts (skipping any question already answered by a flag or
// positional argument), then copy the template tree into place and print
// follow-up instructions. The root command parses its own arguments
// permissively, so unknown flags are ignored instead of rejected.
//
// Subcommands:
//
//	appforge list      List the available templates
//	appforge version   Show build information
package cmd
