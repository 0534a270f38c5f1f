package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mariakhr/go-scheme/internal/lexer"
)

var lexExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Scheme file or expression",
	Long: `Tokenize a query and print the resulting tokens, one per line.

This command is useful for debugging the tokenizer.

Examples:
  # Tokenize an inline expression
  scheme lex -e "(+ 1 '(a . b))"

  # Tokenize a file
  scheme lex script.scm`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexQuery,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func lexQuery(_ *cobra.Command, args []string) error {
	input, err := readInput(args, lexExpr)
	if err != nil {
		return err
	}

	tok, err := lexer.New(strings.NewReader(input))
	if err != nil {
		return err
	}
	for !tok.IsEnd() {
		fmt.Println(tok.Current())
		if err := tok.Advance(); err != nil {
			return err
		}
	}
	return nil
}
