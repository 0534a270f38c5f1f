package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	schemeerrors "github.com/mariakhr/go-scheme/internal/errors"
	"github.com/mariakhr/go-scheme/internal/lexer"
	"github.com/mariakhr/go-scheme/internal/runtime"
)

// parse reads one expression from input on a fresh heap.
func parse(t *testing.T, input string) (runtime.Object, error) {
	t.Helper()
	tok, err := lexer.New(strings.NewReader(input))
	require.NoError(t, err, "tokenizer construction for %q", input)
	return Read(tok, runtime.NewHeap())
}

func TestReadSerializes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "number", input: "5", expected: "5"},
		{name: "negative number", input: "-3", expected: "-3"},
		{name: "symbol", input: "foo", expected: "foo"},
		{name: "empty list", input: "()", expected: "()"},
		{name: "proper list", input: "(1 2 3)", expected: "(1 2 3)"},
		{name: "nested list", input: "(1 (2 3) 4)", expected: "(1 (2 3) 4)"},
		{name: "dotted pair", input: "(1 . 2)", expected: "(1 . 2)"},
		{name: "improper list", input: "(1 2 . 3)", expected: "(1 2 . 3)"},
		{name: "dotted nil normalizes", input: "(1 . (2 . ()))", expected: "(1 2)"},
		{name: "quote sugar", input: "'x", expected: "(quote x)"},
		{name: "nested quote", input: "''x", expected: "(quote (quote x))"},
		{name: "quoted list", input: "'(1 2)", expected: "(quote (1 2))"},
		{name: "mixed atoms", input: "(+ a -1)", expected: "(+ a -1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := parse(t, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, runtime.Serialize(obj))
		})
	}
}

func TestReadRoundTripStable(t *testing.T) {
	// Parsing the serialization of a parse must be a fixed point.
	inputs := []string{"(1 (2 3) . 4)", "'(a b c)", "((()))", "(a . (b . c))"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			obj, err := parse(t, input)
			require.NoError(t, err)
			once := runtime.Serialize(obj)

			again, err := parse(t, once)
			require.NoError(t, err)
			require.Equal(t, once, runtime.Serialize(again))
		})
	}
}

func TestReadSyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "unterminated list", input: "("},
		{name: "unterminated after element", input: "(1"},
		{name: "unterminated dotted tail", input: "(1 . 2"},
		{name: "extra element after dotted tail", input: "(1 . 2 3)"},
		{name: "stray close paren", input: ")"},
		{name: "stray dot", input: "."},
		{name: "dot before close paren", input: "(1 .)"},
		{name: "quote at end of stream", input: "'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.input)
			require.Error(t, err)
			require.True(t, schemeerrors.IsSyntax(err), "expected a syntax error, got %v", err)
		})
	}
}

func TestReadLeavesTrailingTokens(t *testing.T) {
	tok, err := lexer.New(strings.NewReader("(1 2) extra"))
	require.NoError(t, err)

	obj, err := Read(tok, runtime.NewHeap())
	require.NoError(t, err)
	require.Equal(t, "(1 2)", runtime.Serialize(obj))
	require.False(t, tok.IsEnd(), "trailing tokens must remain for the session to reject")
	require.Equal(t, lexer.SYMBOL, tok.Current().Type)
}
