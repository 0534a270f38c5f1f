package interp

import (
	"github.com/mariakhr/go-scheme/internal/errors"
	"github.com/mariakhr/go-scheme/internal/runtime"
)

func (ev *evaluator) isPair(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 1 {
		return nil, errors.NewRuntime("pair?: expected 1 argument")
	}
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	_, ok := args[0].(*runtime.Cell)
	return ev.truth(scope, ok)
}

func (ev *evaluator) isNull(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 1 {
		return nil, errors.NewRuntime("null?: expected 1 argument")
	}
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	return ev.truth(scope, args[0] == nil)
}

func (ev *evaluator) isList(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 1 {
		return nil, errors.NewRuntime("list?: expected 1 argument")
	}
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	items := runtime.ListToSlice(args[0])
	return ev.truth(scope, items[len(items)-1] == nil)
}

// cons pairs its two arguments without evaluating them.
func (ev *evaluator) cons(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 2 {
		return nil, errors.NewRuntime("cons: expected 2 arguments")
	}
	return ev.heap.NewHolder(ev.heap.NewCell(args[0], args[1]), scope), nil
}

func (ev *evaluator) car(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 1 {
		return nil, errors.NewRuntime("car: expected 1 argument")
	}

	holder, err := ev.applyToHolder(args[0], scope, "car")
	if err != nil {
		return nil, err
	}
	items := runtime.ListToSlice(holder.Object())
	if len(items) < 2 {
		return nil, errors.NewRuntime("car: expected list with >= 1 argument")
	}
	// The head re-resolves through the scope the list was built in, so
	// a symbol element yields its binding there.
	return ev.resolve(items[0], holder.Scope())
}

func (ev *evaluator) cdr(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 1 {
		return nil, errors.NewRuntime("cdr: expected 1 argument")
	}

	holder, err := ev.applyToHolder(args[0], scope, "cdr")
	if err != nil {
		return nil, err
	}
	items := runtime.ListToSlice(holder.Object())
	if len(items) < 2 {
		return nil, errors.NewRuntime("cdr: expected list with >= 1 argument")
	}
	rest := items[1:]

	// A remainder led by a number or the empty list is plain data; any
	// other head needs re-resolution in the list's scope.
	if rest[0] == nil {
		return ev.heap.NewHolder(runtime.SliceToList(ev.heap, rest), holder.Scope()), nil
	}
	if _, ok := rest[0].(*runtime.Number); ok {
		return ev.heap.NewHolder(runtime.SliceToList(ev.heap, rest), holder.Scope()), nil
	}
	return ev.resolve(runtime.SliceToList(ev.heap, rest), holder.Scope())
}

// list builds a proper list of its unevaluated arguments.
func (ev *evaluator) list(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)

	items := make([]runtime.Object, 0, len(args)+1)
	items = append(items, args...)
	items = append(items, nil)
	return ev.heap.NewHolder(runtime.SliceToList(ev.heap, items), scope), nil
}

func (ev *evaluator) listRef(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 2 {
		return nil, errors.NewRuntime("list-ref: expected 2 arguments")
	}
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	num, ok := args[1].(*runtime.Number)
	if !ok {
		return nil, errors.NewRuntime("list-ref: expected <List> <Ind>")
	}

	items := runtime.ListToSlice(args[0])
	ind := int(num.Value())
	if ind < 0 || ind >= len(items)-1 {
		return nil, errors.NewRuntime("list-ref: index out of range")
	}
	return ev.heap.NewHolder(items[ind], scope), nil
}

func (ev *evaluator) listTail(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 2 {
		return nil, errors.NewRuntime("list-tail: expected 2 arguments")
	}
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	num, ok := args[1].(*runtime.Number)
	if !ok {
		return nil, errors.NewRuntime("list-tail: expected <List> <Ind>")
	}

	items := runtime.ListToSlice(args[0])
	ind := int(num.Value())
	if ind < 0 || ind > len(items)-1 {
		return nil, errors.NewRuntime("list-tail: index out of range")
	}
	return ev.heap.NewHolder(runtime.SliceToList(ev.heap, items[ind:]), scope), nil
}

// applyToHolder evaluates expr to a callable and requires the result
// to be a data carrier.
func (ev *evaluator) applyToHolder(expr runtime.Object, scope *runtime.Scope, name string) (*runtime.ObjectHolder, error) {
	fn, err := ev.apply(expr, scope)
	if err != nil {
		return nil, err
	}
	holder, ok := fn.(*runtime.ObjectHolder)
	if !ok {
		return nil, errors.NewRuntime("%s: expected pair", name)
	}
	return holder, nil
}
