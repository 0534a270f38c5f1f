// Package parser implements the recursive-descent reader that turns a
// token stream into heap objects. The parsed tree is built directly
// from runtime values: numbers, symbols and cells, with nil standing
// for the empty list.
package parser

import (
	"github.com/mariakhr/go-scheme/internal/errors"
	"github.com/mariakhr/go-scheme/internal/lexer"
	"github.com/mariakhr/go-scheme/internal/runtime"
)

// Read parses one expression from the tokenizer, allocating objects on
// h. The caller is responsible for rejecting trailing tokens after the
// expression.
func Read(t *lexer.Tokenizer, h *runtime.Heap) (runtime.Object, error) {
	if t.IsEnd() {
		return nil, errors.NewSyntax("Unexpected end of input stream")
	}
	token := t.Current()
	if err := t.Advance(); err != nil {
		return nil, err
	}

	switch token.Type {
	case lexer.CONSTANT:
		return h.NewNumber(token.Value), nil
	case lexer.SYMBOL:
		return h.NewSymbol(token.Name), nil
	case lexer.LPAREN:
		return readList(t, h)
	case lexer.QUOTE:
		inner, err := Read(t, h)
		if err != nil {
			return nil, err
		}
		return h.NewCell(h.NewSymbol("quote"), h.NewCell(inner, nil)), nil
	default:
		// RPAREN or DOT outside a list.
		return nil, errors.NewSyntax("Unexpected token")
	}
}

// readList parses the remainder of a parenthesized sequence, the
// opening parenthesis already consumed. It handles the dotted-pair
// tail and returns nil for the empty list.
func readList(t *lexer.Tokenizer, h *runtime.Heap) (runtime.Object, error) {
	if t.IsEnd() {
		return nil, errors.NewSyntax("Unexpected end of input stream")
	}
	if t.Current().Type == lexer.RPAREN {
		if err := t.Advance(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	first, err := Read(t, h)
	if err != nil {
		return nil, err
	}

	var second runtime.Object
	if !t.IsEnd() && t.Current().Type == lexer.DOT {
		if err := t.Advance(); err != nil {
			return nil, err
		}
		second, err = Read(t, h)
		if err != nil {
			return nil, err
		}
		if t.IsEnd() || t.Current().Type != lexer.RPAREN {
			return nil, errors.NewSyntax("Expected ')'")
		}
		if err := t.Advance(); err != nil {
			return nil, err
		}
	} else {
		second, err = readList(t, h)
		if err != nil {
			return nil, err
		}
	}
	return h.NewCell(first, second), nil
}
