package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appforge/appforge/internal/version"
)

var (
	versionFormat string
	versionShort  bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information including the semantic version, git
commit, Go version, and target platform.

Examples:
  appforge version               # Show version info
  appforge version --short       # Show version number only
  appforge version --format json # Output as JSON`,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	info := version.GetBuildInfo()

	switch versionFormat {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "text":
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersion())
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "appforge %s", info.Version)
		if info.GitCommit != "unknown" && len(info.GitCommit) >= 7 {
			fmt.Fprintf(cmd.OutOrStdout(), " (%s)", info.GitCommit[:7])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s %s\n", info.GoVersion, info.Platform)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", versionFormat)
	}
}
