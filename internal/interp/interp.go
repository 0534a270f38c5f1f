// Package interp provides the evaluator and session for the Scheme
// interpreter. A session owns a heap and a global scope populated with
// every built-in; queries are evaluated one at a time and the heap is
// collected after each query that completes without error, keeping
// exactly what the global scope reaches.
package interp

import (
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/mariakhr/go-scheme/internal/errors"
	"github.com/mariakhr/go-scheme/internal/lexer"
	"github.com/mariakhr/go-scheme/internal/parser"
	"github.com/mariakhr/go-scheme/internal/runtime"
)

// Interpreter evaluates queries against a persistent global scope.
// It is not safe for concurrent use.
type Interpreter struct {
	heap   *runtime.Heap
	global *runtime.Scope
	ev     *evaluator
	logger hclog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger used for evaluation and collection
// tracing. The default logger discards everything.
func WithLogger(logger hclog.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// New creates an interpreter with a fresh heap and a global scope
// holding all built-ins.
func New(opts ...Option) *Interpreter {
	heap := runtime.NewHeap()
	i := &Interpreter{
		heap:   heap,
		global: runtime.NewScope(nil),
		ev:     &evaluator{heap: heap},
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.registerBuiltins()
	return i
}

// Run evaluates one expression and returns its serialized value.
// Forms that produce nothing, such as define and set!, return the
// empty string. After serialization the heap is collected with the
// global scope as the root, so definitions survive across calls and
// everything else is released.
func (i *Interpreter) Run(query string) (string, error) {
	i.logger.Debug("evaluating query", "query", query)

	tok, err := lexer.New(strings.NewReader(query))
	if err != nil {
		return "", err
	}
	expr, err := parser.Read(tok, i.heap)
	if err != nil {
		return "", err
	}
	if !tok.IsEnd() {
		return "", errors.NewSyntax("Syntax error when parsing the query")
	}

	fn, err := i.ev.apply(expr, i.global)
	if err != nil {
		return "", err
	}
	var out string
	if fn != nil {
		obj, err := result(fn)
		if err != nil {
			return "", err
		}
		out = runtime.Serialize(obj)
	}

	before := i.heap.Size()
	released := i.heap.MarkAndSweep(i.global)
	i.logger.Debug("collection complete", "before", before, "released", released, "live", i.heap.Size())
	return out, nil
}

// Close releases the entire heap by collecting with no root. The
// interpreter must not be used afterwards.
func (i *Interpreter) Close() {
	released := i.heap.MarkAndSweep(nil)
	i.logger.Debug("session closed", "released", released)
}

// HeapSize returns the number of live heap objects. After a query that
// returned without error it is a function of the global scope's
// reachable set; a failed query skips the collection, so its objects
// remain until the next successful query.
func (i *Interpreter) HeapSize() int {
	return i.heap.Size()
}

// registerBuiltins populates the global scope with the pre-bound
// names: the boolean constants and every primitive and special form.
func (i *Interpreter) registerBuiltins() {
	h, ev := i.heap, i.ev

	i.global.Put("#t", h.NewHolder(h.NewSymbol("#t"), nil))
	i.global.Put("#f", h.NewHolder(h.NewSymbol("#f"), nil))

	builtins := map[string]builtinFunc{
		"boolean?": ev.isBoolean,
		"not":      ev.not,
		"and":      ev.and,
		"or":       ev.or,

		"number?": ev.isNumber,
		"=":       ev.equal,
		"<":       ev.less,
		">":       ev.greater,
		"<=":      ev.lessOrEqual,
		">=":      ev.greaterOrEqual,
		"+":       ev.add,
		"-":       ev.sub,
		"*":       ev.mul,
		"/":       ev.div,
		"max":     ev.max,
		"min":     ev.min,
		"abs":     ev.abs,

		"quote": ev.quote,

		"pair?":     ev.isPair,
		"null?":     ev.isNull,
		"list?":     ev.isList,
		"cons":      ev.cons,
		"car":       ev.car,
		"cdr":       ev.cdr,
		"list":      ev.list,
		"list-ref":  ev.listRef,
		"list-tail": ev.listTail,

		"symbol?":  ev.isSymbol,
		"define":   ev.define,
		"set!":     ev.set,
		"set-car!": ev.setCar,
		"set-cdr!": ev.setCdr,

		"if":     ev.iff,
		"lambda": ev.lambda,
	}
	for name, fn := range builtins {
		i.global.Put(name, i.heap.Register(&Builtin{name: name, fn: fn}))
	}
}
