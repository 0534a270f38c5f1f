// Package lexer implements the streaming tokenizer for Scheme queries.
//
// The tokenizer wraps a character source with a one-token lookahead:
// construction eagerly reads the first token, Current returns it, and
// Advance consumes it and reads the next. Only ASCII whitespace is
// recognized as a separator.
package lexer

import (
	"bufio"
	"io"
	"strconv"

	"github.com/mariakhr/go-scheme/internal/errors"
)

// Tokenizer is a lexical scanner over a character stream with a
// one-token lookahead.
type Tokenizer struct {
	reader *bufio.Reader
	token  Token
	eof    bool
}

// New creates a Tokenizer over r and reads the first token.
// A malformed leading token is reported immediately.
func New(r io.Reader) (*Tokenizer, error) {
	t := &Tokenizer{reader: bufio.NewReader(r)}
	if err := t.Advance(); err != nil {
		return nil, err
	}
	return t, nil
}

// IsEnd reports whether the stream is exhausted. Once true, Current
// holds the last token returned before exhaustion and must not be used.
func (t *Tokenizer) IsEnd() bool {
	return t.eof
}

// Current returns the current token without consuming it.
func (t *Tokenizer) Current() Token {
	return t.token
}

// Advance consumes the current token and reads the next one from the
// stream. At end of stream it sets the end flag instead of producing
// a token.
func (t *Tokenizer) Advance() error {
	ch, ok := t.peek()
	for ok && isSpace(ch) {
		t.read()
		ch, ok = t.peek()
	}
	if !ok {
		t.eof = true
		return nil
	}

	switch {
	case ch == '(':
		t.read()
		t.token = Token{Type: LPAREN}
	case ch == ')':
		t.read()
		t.token = Token{Type: RPAREN}
	case ch == '\'':
		t.read()
		t.token = Token{Type: QUOTE}
	case ch == '.':
		t.read()
		t.token = Token{Type: DOT}
	case ch == '-' || ch == '+':
		sign := t.read()
		if next, ok := t.peek(); ok && isDigit(next) {
			t.token = t.readConstant(sign)
		} else {
			t.token = Token{Type: SYMBOL, Name: string(sign)}
		}
	case isDigit(ch):
		t.token = t.readConstant(0)
	case isSymbolStart(ch):
		t.token = t.readSymbol()
	default:
		return errors.NewSyntax("Unexpected token")
	}
	return nil
}

// peek returns the next character without consuming it. The second
// result is false at end of stream.
func (t *Tokenizer) peek() (byte, bool) {
	b, err := t.reader.Peek(1)
	if err != nil {
		return 0, false
	}
	return b[0], true
}

// read consumes and returns the next character. Callers peek first.
func (t *Tokenizer) read() byte {
	b, _ := t.reader.ReadByte()
	return b
}

// readConstant decodes a decimal integer literal. sign is '-', '+' or
// zero when the literal starts with a digit. Out-of-range literals are
// truncated to 32 bits rather than failing the tokenizer.
func (t *Tokenizer) readConstant(sign byte) Token {
	var buf []byte
	if sign != 0 {
		buf = append(buf, sign)
	}
	for {
		ch, ok := t.peek()
		if !ok || !isDigit(ch) {
			break
		}
		buf = append(buf, t.read())
	}
	// ParseInt saturates on overflow; the int32 conversion then fixes
	// the implementation-defined truncation.
	value, _ := strconv.ParseInt(string(buf), 10, 64)
	return Token{Type: CONSTANT, Value: int32(value)}
}

// readSymbol reads a symbol verbatim. A symbol extends until end of
// stream, a closing parenthesis, or whitespace; any character in
// between is kept, including digits, '!', '?' and '-'.
func (t *Tokenizer) readSymbol() Token {
	buf := []byte{t.read()}
	for {
		ch, ok := t.peek()
		if !ok || ch == ')' || isSpace(ch) {
			break
		}
		buf = append(buf, t.read())
	}
	return Token{Type: SYMBOL, Name: string(buf)}
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isSymbolStart(ch byte) bool {
	if 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' {
		return true
	}
	switch ch {
	case '<', '=', '>', '*', '/', '#':
		return true
	}
	return false
}
