package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mbeckett/plinth/internal/gen"
)

var listCmd = &cobra.Command{
	Use:   "list <catalog>",
	Short: "Show the constructors a catalog defines",
	Long: `Loads and validates a catalog and prints one line per generated
constructor with its code, severity and parameters.

Examples:
  plinthgen list catalog.yaml
  plinthgen list errors.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := gen.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("package %s, %d constructors:\n", cat.Package, len(cat.Errors))
	for _, d := range cat.Errors {
		params := make([]string, len(d.Fields))
		for i, f := range d.Fields {
			params[i] = f.Name + " " + f.Type
		}
		fmt.Printf("  New%s(%s)\n", d.Name, strings.Join(params, ", "))
		fmt.Printf("    code: %s, severity: %s\n", d.Code, d.Severity)
		if verbose {
			fmt.Printf("    message: %s\n", d.Message)
		}
	}
	return nil
}
