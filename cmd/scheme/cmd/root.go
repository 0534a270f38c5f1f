package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/mariakhr/go-scheme/pkg/scheme"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var trace bool

var rootCmd = &cobra.Command{
	Use:   "scheme",
	Short: "Minimal Scheme interpreter",
	Long: `go-scheme is a Go implementation of a minimal Scheme dialect over
32-bit signed integers, symbols and pairs.

A session keeps a persistent global environment across queries and
reclaims unreachable values with a mark-and-sweep collector after
every query.

With no subcommand, one query is read from standard input and the
result - or the error message - is printed to standard output.`,
	Version: Version,
	Args:    cobra.NoArgs,
	RunE:    evalStdinLine,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "trace evaluation and collection to stderr")
}

// newLogger builds the engine logger: debug to stderr under --trace,
// silent otherwise.
func newLogger() hclog.Logger {
	if trace {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "scheme",
			Level:  hclog.Debug,
			Output: os.Stderr,
		})
	}
	return hclog.NewNullLogger()
}

// evalStdinLine implements the bare front end: read one line, evaluate
// it, print the result or the error message, exit 0 either way.
func evalStdinLine(_ *cobra.Command, _ []string) error {
	engine, err := scheme.New(scheme.WithLogger(newLogger()))
	if err != nil {
		return err
	}
	defer engine.Close()

	reader := bufio.NewReader(os.Stdin)
	query, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	query = strings.TrimRight(query, "\r\n")

	result, runErr := engine.Run(query)
	if runErr != nil {
		fmt.Println(runErr.Error())
		return nil
	}
	fmt.Println(result)
	return nil
}

// readInput resolves the query source shared by the run, lex and parse
// commands: an inline -e expression, a file argument, or one line from
// standard input.
func readInput(args []string, expr string) (string, error) {
	if expr != "" {
		return expr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
