package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mariakhr/go-scheme/pkg/scheme"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Read queries from standard input, one per line, and print each
result. The session's global environment persists across queries, so
definitions remain visible until the session ends.

Errors are printed and the loop continues. End the session with EOF
(Ctrl-D).`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	engine, err := scheme.New(scheme.WithLogger(newLogger()))
	if err != nil {
		return err
	}
	defer engine.Close()

	interactive := isatty.IsTerminal(os.Stdin.Fd())
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		result, err := engine.Run(query)
		if err != nil {
			fmt.Println(err.Error())
			continue
		}
		if result != "" {
			fmt.Println(result)
		}
	}
	return scanner.Err()
}
