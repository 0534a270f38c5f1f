package interp

import (
	"github.com/mariakhr/go-scheme/internal/errors"
	"github.com/mariakhr/go-scheme/internal/runtime"
)

func (ev *evaluator) isBoolean(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 1 {
		return nil, errors.NewRuntime("boolean?: expected 1 argument")
	}
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	if sym, ok := args[0].(*runtime.Symbol); ok {
		if name := sym.Name(); name == "#t" || name == "#f" {
			return ev.truth(scope, true)
		}
	}
	return ev.truth(scope, false)
}

func (ev *evaluator) not(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 1 {
		return nil, errors.NewRuntime("not: expected 1 argument")
	}
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	return ev.truth(scope, isFalse(args[0]))
}

// and evaluates left to right and stops at the first false argument.
// With no arguments it is true; otherwise it yields the last evaluated
// value.
func (ev *evaluator) and(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)

	for i, arg := range args {
		obj, err := ev.eval(arg, scope)
		if err != nil {
			return nil, err
		}
		args[i] = obj
		if isFalse(obj) {
			return ev.truth(scope, false)
		}
	}

	if len(args) == 0 {
		return ev.truth(scope, true)
	}
	return ev.heap.NewHolder(args[len(args)-1], scope), nil
}

// or evaluates left to right and yields the first non-false argument;
// with no arguments, or when every argument is false, it is false.
func (ev *evaluator) or(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)

	for i, arg := range args {
		obj, err := ev.eval(arg, scope)
		if err != nil {
			return nil, err
		}
		args[i] = obj
		if !isFalse(obj) {
			return ev.heap.NewHolder(obj, scope), nil
		}
	}

	return ev.truth(scope, false)
}
