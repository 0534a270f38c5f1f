package interp

import (
	"github.com/mariakhr/go-scheme/internal/errors"
	"github.com/mariakhr/go-scheme/internal/runtime"
)

// quote returns its single argument unevaluated, wrapped for the
// current scope.
func (ev *evaluator) quote(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 1 {
		return nil, errors.NewRuntime("quote: expected 1 argument")
	}
	return ev.heap.NewHolder(args[0], scope), nil
}

func (ev *evaluator) isSymbol(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 1 {
		return nil, errors.NewRuntime("symbol?: expected 1 argument")
	}
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	_, ok := args[0].(*runtime.Symbol)
	return ev.truth(scope, ok)
}

// define binds a name in the current scope. The first shape binds the
// resolved but uninvoked expression; the sugared shape
// (define (name params...) body...) builds a closure.
func (ev *evaluator) define(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) == 0 {
		return nil, errors.NewSyntax("define: expected 2 arguments")
	}

	if _, sugared := args[0].(*runtime.Cell); sugared {
		if len(args) < 2 {
			return nil, errors.NewSyntax("define: lambda sugar")
		}
		head := runtime.ListToSlice(args[0])
		sym, ok := head[0].(*runtime.Symbol)
		if !ok {
			return nil, errors.NewRuntime("define: expected symbol name")
		}
		params := head[1 : len(head)-1]
		lambda := ev.newLambda(params, args[1:], scope)
		scope.Put(sym.Name(), lambda)
		return nil, nil
	}

	if len(args) != 2 {
		return nil, errors.NewSyntax("define: expected 2 arguments")
	}
	sym, ok := args[0].(*runtime.Symbol)
	if !ok {
		return nil, errors.NewRuntime("define: expected symbol name")
	}
	fn, err := ev.resolve(args[1], scope)
	if err != nil {
		return nil, err
	}
	scope.Put(sym.Name(), fn)
	return nil, nil
}

// set rebinds an existing name wherever the chain holds it, after
// fully evaluating the expression.
func (ev *evaluator) set(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 2 {
		return nil, errors.NewSyntax("set!: expected 2 arguments")
	}
	sym, ok := args[0].(*runtime.Symbol)
	if !ok {
		return nil, errors.NewRuntime("set!: expected <Name> <Expr>")
	}

	fn, err := ev.apply(args[1], scope)
	if err != nil {
		return nil, err
	}
	if err := scope.Set(sym.Name(), fn); err != nil {
		return nil, err
	}
	return nil, nil
}

func (ev *evaluator) setCar(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	return ev.setPairField(args, scope, "set-car!", 0)
}

func (ev *evaluator) setCdr(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	return ev.setPairField(args, scope, "set-cdr!", 1)
}

// setPairField rewrites one field of the pair held by the first
// argument's binding. A numeric replacement is stored as evaluated; any
// other value is written as a fresh symbol carrying the binding's
// display name.
func (ev *evaluator) setPairField(args []runtime.Object, scope *runtime.Scope, name string, field int) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 2 {
		return nil, errors.NewSyntax("%s: expected 2 arguments", name)
	}

	target, err := ev.applyToHolder(args[0], scope, name)
	if err != nil {
		return nil, err
	}
	items := runtime.ListToSlice(target.Object())
	if len(items) != 2 {
		return nil, errors.NewRuntime("%s: expected pair", name)
	}

	value, err := ev.applyToHolder(args[1], scope, name)
	if err != nil {
		return nil, err
	}
	if num, ok := value.Object().(*runtime.Number); ok {
		items[field] = num
	} else {
		items[field] = ev.heap.NewSymbol(value.Name())
	}

	target.SetObject(runtime.SliceToList(ev.heap, items))
	return nil, nil
}

// iff is the if special form: the condition is evaluated, then exactly
// one branch is.
func (ev *evaluator) iff(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 2 && len(args) != 3 {
		return nil, errors.NewSyntax("if: expected <cond> <true_br> [<false_br>]")
	}

	cond, err := ev.eval(args[0], scope)
	if err != nil {
		return nil, err
	}
	if !isFalse(cond) {
		return ev.apply(args[1], scope)
	}
	if len(args) == 3 {
		return ev.apply(args[2], scope)
	}
	return nil, nil
}

// lambda constructs a closure over the current scope from an
// unevaluated parameter list and body sequence.
func (ev *evaluator) lambda(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) < 2 {
		return nil, errors.NewSyntax("Invalid lambda syntax")
	}

	params := runtime.ListToSlice(args[0])
	params = params[:len(params)-1]
	return ev.newLambda(params, args[1:], scope), nil
}
