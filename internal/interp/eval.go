package interp

import (
	"github.com/mariakhr/go-scheme/internal/errors"
	"github.com/mariakhr/go-scheme/internal/runtime"
)

// evaluator holds the heap all evaluation allocates on. Builtins and
// closures keep a reference to it so they can resolve operands and
// build results.
type evaluator struct {
	heap *runtime.Heap
}

// resolve returns the callable for expr without reducing it to data.
//
// Numbers wrap themselves in a fresh holder, combinations resolve
// their operator and invoke it with the raw operands, and symbols look
// up their binding. Anything else, including the empty list, cannot be
// resolved.
func (ev *evaluator) resolve(expr runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	switch v := expr.(type) {
	case *runtime.Number:
		return ev.heap.NewHolder(v, scope), nil
	case *runtime.Cell:
		return ev.apply(v, scope)
	case *runtime.Symbol:
		if scope == nil {
			return nil, errors.NewName("Invalid name: %s", v.Name())
		}
		return scope.Get(v.Name())
	default:
		return nil, errors.NewRuntime("Unexpected function")
	}
}

// apply resolves the head of expr to a callable and invokes it with
// the remaining elements as its unevaluated argument vector. The
// vector keeps the list terminator; callables drop it themselves.
// A non-combination expr degenerates to resolving it and invoking the
// result with no arguments, which is how holders pass through.
func (ev *evaluator) apply(expr runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	items := runtime.ListToSlice(expr)
	fn, err := ev.resolve(items[0], scope)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, errors.NewRuntime("Unexpected function")
	}
	return fn.Invoke(items[1:], scope)
}

// eval reduces expr all the way to a data object. Forms that produce
// nothing yield nil with no error; a callable that is not a data
// carrier cannot be reduced.
func (ev *evaluator) eval(expr runtime.Object, scope *runtime.Scope) (runtime.Object, error) {
	fn, err := ev.apply(expr, scope)
	if err != nil {
		return nil, err
	}
	return result(fn)
}

// evalArgs reduces every argument in place.
func (ev *evaluator) evalArgs(args []runtime.Object, scope *runtime.Scope) error {
	for i, arg := range args {
		obj, err := ev.eval(arg, scope)
		if err != nil {
			return err
		}
		args[i] = obj
	}
	return nil
}

// result unwraps a holder to its data object. A nil callable is the
// no-value result of define and friends.
func result(fn runtime.Function) (runtime.Object, error) {
	if fn == nil {
		return nil, nil
	}
	if holder, ok := fn.(*runtime.ObjectHolder); ok {
		return holder.Object(), nil
	}
	return nil, errors.NewRuntime("Unexpected result")
}

// isFalse reports whether obj is the false value: the symbol whose
// name is exactly "#f". Every other object, including 0 and the empty
// list, is true.
func isFalse(obj runtime.Object) bool {
	sym, ok := obj.(*runtime.Symbol)
	return ok && sym.Name() == "#f"
}

// truth maps a Go bool to the #t or #f binding visible from scope.
func (ev *evaluator) truth(scope *runtime.Scope, b bool) (runtime.Function, error) {
	if b {
		return scope.Get("#t")
	}
	return scope.Get("#f")
}
