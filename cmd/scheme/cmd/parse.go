package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mariakhr/go-scheme/internal/errors"
	"github.com/mariakhr/go-scheme/internal/lexer"
	"github.com/mariakhr/go-scheme/internal/parser"
	"github.com/mariakhr/go-scheme/internal/runtime"
)

var parseExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Scheme expression and print it back",
	Long: `Parse one expression and print its serialized form without
evaluating it. Useful for checking reader behavior: quote sugar
expands to (quote ...) and dotted pairs normalize.

Examples:
  scheme parse -e "'(1 2 . 3)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseQuery,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseQuery(_ *cobra.Command, args []string) error {
	input, err := readInput(args, parseExpr)
	if err != nil {
		return err
	}

	tok, err := lexer.New(strings.NewReader(input))
	if err != nil {
		return err
	}
	heap := runtime.NewHeap()
	expr, err := parser.Read(tok, heap)
	if err != nil {
		return err
	}
	if !tok.IsEnd() {
		return errors.NewSyntax("Syntax error when parsing the query")
	}
	fmt.Println(runtime.Serialize(expr))
	return nil
}
