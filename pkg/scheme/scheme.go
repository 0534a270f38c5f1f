// Package scheme is the public embedding API for the interpreter.
//
// An Engine holds one interpreter session: a heap and a global scope
// that persist across Run calls, so a define in one query is visible
// to the next. Close releases the whole heap.
//
// Example:
//
//	engine, err := scheme.New()
//	if err != nil {
//		return err
//	}
//	defer engine.Close()
//
//	result, err := engine.Run("(+ 1 2 3)")
//	// result == "6"
package scheme

import (
	"github.com/hashicorp/go-hclog"

	"github.com/mariakhr/go-scheme/internal/interp"
)

// Engine is one interpreter session.
type Engine struct {
	interp *interp.Interpreter
}

// Option configures an Engine.
type Option func(*config)

type config struct {
	logger hclog.Logger
}

// WithLogger routes evaluation and collection tracing to logger.
func WithLogger(logger hclog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New creates an engine with a populated global scope.
func New(opts ...Option) (*Engine, error) {
	cfg := &config{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Engine{
		interp: interp.New(interp.WithLogger(cfg.logger)),
	}, nil
}

// Run evaluates one expression and returns its printed value. Forms
// that produce nothing return the empty string. Definitions persist
// for later Run calls on the same engine.
func (e *Engine) Run(query string) (string, error) {
	return e.interp.Run(query)
}

// HeapSize returns the number of live interpreter objects.
func (e *Engine) HeapSize() int {
	return e.interp.HeapSize()
}

// Close releases every interpreter object. The engine must not be
// used after Close.
func (e *Engine) Close() {
	e.interp.Close()
}
