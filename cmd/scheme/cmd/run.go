package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mariakhr/go-scheme/pkg/scheme"
)

var runExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Scheme file or expression",
	Long: `Evaluate Scheme queries from a file or an inline expression.

A file is evaluated one query per non-empty line against a single
session, so definitions on earlier lines are visible to later ones.
Forms that produce no value print nothing.

Examples:
  # Run a script file
  scheme run script.scm

  # Evaluate an inline expression
  scheme run -e "(+ 1 2 3)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runScript(_ *cobra.Command, args []string) error {
	input, err := readInput(args, runExpr)
	if err != nil {
		return err
	}

	engine, err := scheme.New(scheme.WithLogger(newLogger()))
	if err != nil {
		return err
	}
	defer engine.Close()

	for _, line := range strings.Split(input, "\n") {
		query := strings.TrimSpace(line)
		if query == "" {
			continue
		}
		result, err := engine.Run(query)
		if err != nil {
			return err
		}
		if result != "" {
			fmt.Println(result)
		}
	}
	return nil
}
