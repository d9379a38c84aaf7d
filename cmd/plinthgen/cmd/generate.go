package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbeckett/plinth/internal/gen"
)

var (
	generateCatalog string
	generateOut     string
	generatePackage string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a catalog to a Go source file",
	Long: `Loads an error catalog, validates it and writes the generated
constructor family as gofmt-formatted Go source.

The catalog format is detected from the file extension: .yaml and .yml
are parsed as YAML, .toml as TOML.

Examples:
  plinthgen generate --catalog catalog.yaml --out catalog_gen.go
  plinthgen generate --catalog errors.toml --out errors_gen.go --package apperrors`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateCatalog, "catalog", "", "catalog file to render (required)")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "output file to write (required)")
	generateCmd.Flags().StringVar(&generatePackage, "package", "", "override the catalog's package name")
	_ = generateCmd.MarkFlagRequired("catalog")
	_ = generateCmd.MarkFlagRequired("out")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cat, err := gen.Generate(generateCatalog, generateOut, generatePackage)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("generated %s from %s (%d constructors)\n", generateOut, generateCatalog, len(cat.Errors))
	}
	return nil
}
