package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "plinthgen",
	Short: "plinth error constructor generator",
	Long: `plinthgen generates Go error constructor families from a declarative
catalog written in YAML or TOML.

Each catalog entry declares an exported constructor name, an error
code, a severity, a message template and typed fields. The generated
constructors build *errors.Error values with the code, severity and
one detail entry per field.

Commands:
  generate  - Render a catalog to a Go source file
  list      - Show the constructors a catalog defines`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError("command failed", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
