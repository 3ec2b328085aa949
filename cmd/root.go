package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/appforge/appforge/internal/catalog"
	"github.com/appforge/appforge/internal/config"
	"github.com/appforge/appforge/internal/logging"
	"github.com/appforge/appforge/internal/prompt"
	"github.com/appforge/appforge/internal/request"
	"github.com/appforge/appforge/internal/scaffold"
	"github.com/appforge/appforge/internal/ui"
)

// settings carries flag values into config.Load. No files or environment
// variables feed it; every run starts from built-in defaults.
var settings = viper.New()

// newRunner builds the prompt runner. Swapped out in tests.
var newRunner = func() prompt.Runner {
	return &prompt.TTYRunner{}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "appforge [directory]",
	Short: "Scaffold a new frontend project from a starter template",
	Long: `Appforge scaffolds a new frontend project by copying a starter template
into a target directory and printing follow-up instructions.

Run it with no arguments for the full interactive flow, or preselect
answers with the directory argument and the --template flag.

Quick Start:
  appforge                              Interactive: name, framework, variant
  appforge my-app                       Skip the project-name question
  appforge my-app --template vue-ts     Skip every question
  appforge list                         List the available templates`,
	Args: cobra.ArbitraryArgs,
	// The create invocation ignores unknown flags for forward
	// compatibility, so it scans the raw arguments itself.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runCreate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), usage())
	})
}

// usage returns the create-invocation help text, enumerating every valid
// template id in its catalog color.
func usage() string {
	var b strings.Builder

	b.WriteString("Usage: appforge [OPTIONS]... [DIRECTORY]\n\n")
	b.WriteString("Create a new frontend project from a starter template.\n")
	b.WriteString("With no arguments, start the prompts in interactive mode.\n\n")
	b.WriteString("Options:\n")
	b.WriteString("  -t, --template NAME      use this template\n")
	b.WriteString("      --log-level LEVEL    log level (debug, info, warn, error)\n")
	b.WriteString("  -h, --help               display this usage guide\n\n")
	b.WriteString("Available templates:\n")
	for _, fw := range catalog.Default().Frameworks() {
		for _, v := range fw.Variants {
			fmt.Fprintf(&b, "  %s\n", ui.Render(v.Color, v.ID))
		}
	}

	return b.String()
}

func runCreate(cmd *cobra.Command, args []string) error {
	parsed := request.Normalize(args)

	if parsed.Help {
		fmt.Fprint(cmd.OutOrStdout(), usage())
		return nil
	}

	if parsed.LogLevel != "" {
		settings.Set("log-level", parsed.LogLevel)
	}
	cfg, err := config.Load(settings)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	ctx := cmd.Context()

	logger.Debug(ctx, "parsed arguments",
		"target_dir", parsed.TargetDir,
		"template", parsed.Template,
		"help", parsed.Help,
	)

	res, err := prompt.Resolve(parsed, catalog.Default(), cfg.DefaultName, newRunner())
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("Cancelled, nothing was created."))
			return nil
		}
		return fmt.Errorf("resolution failed: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	templateRoot := cfg.TemplateRoot
	if templateRoot == "" {
		templateRoot, err = scaffold.DefaultTemplateRoot()
		if err != nil {
			return err
		}
	}

	destination := res.TargetDir
	if !filepath.IsAbs(destination) {
		destination = filepath.Join(workDir, destination)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nScaffolding project in %s...\n", destination)

	scaffolder := scaffold.New(workDir, templateRoot, logger)
	scaffolder.Out = cmd.OutOrStdout()

	dest, err := scaffolder.Scaffold(ctx, res.TargetDir, res.TemplateID)
	if err != nil {
		logger.Error(ctx, err, "scaffolding failed", "template", res.TemplateID)
		fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("error: %v", err))
		return err
	}

	scaffolder.NextSteps(dest)

	return nil
}
