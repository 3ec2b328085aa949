package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/appforge/appforge/internal/catalog"
	"github.com/appforge/appforge/internal/ui"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List the available templates",
	Long: `List every framework and template variant this tool can scaffold.

Examples:
  appforge list                   # Table with colored template ids
  appforge list -f json           # Machine-readable JSON
  appforge list --format yaml     # YAML`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "Output format (table, json, yaml)")
}

func runList(cmd *cobra.Command, args []string) error {
	frameworks := catalog.Default().Frameworks()

	switch listFormat {
	case "table":
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FRAMEWORK\tTEMPLATE\tVARIANT")
		for _, fw := range frameworks {
			for _, v := range fw.Variants {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					ui.Render(fw.Color, fw.DisplayName),
					ui.Render(v.Color, v.ID),
					v.DisplayName,
				)
			}
		}
		return w.Flush()
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(frameworks)
	case "yaml":
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer enc.Close()
		return enc.Encode(frameworks)
	default:
		err := fmt.Errorf("unsupported format: %s (supported: table, json, yaml)", listFormat)
		fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("error: %v", err))
		return err
	}
}
