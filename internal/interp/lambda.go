package interp

import (
	"github.com/mariakhr/go-scheme/internal/errors"
	"github.com/mariakhr/go-scheme/internal/runtime"
)

// Lambda is a user-defined closure: a parameter list, a body sequence
// and the scope captured at definition time.
type Lambda struct {
	ev     *evaluator
	params []runtime.Object
	body   []runtime.Object
	scope  *runtime.Scope
}

// newLambda builds a closure and adopts it on the heap.
func (ev *evaluator) newLambda(params, body []runtime.Object, scope *runtime.Scope) *Lambda {
	l := &Lambda{ev: ev, params: params, body: body, scope: scope}
	ev.heap.Register(l)
	return l
}

// Invoke binds the arguments, evaluated in the caller's scope, into a
// fresh child of the captured scope, then resolves each body
// expression in order. The last resolution is the call's result.
func (l *Lambda) Invoke(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != len(l.params) {
		return nil, errors.NewRuntime("lambda: invalid number of arguments")
	}

	cur := l.ev.heap.NewScope(l.scope)
	for i, param := range l.params {
		sym, ok := param.(*runtime.Symbol)
		if !ok {
			return nil, errors.NewRuntime("lambda: expected symbol parameter")
		}
		fn, err := l.ev.apply(args[i], scope)
		if err != nil {
			return nil, err
		}
		cur.Put(sym.Name(), fn)
	}

	var res runtime.Function
	for _, expr := range l.body {
		var err error
		res, err = l.ev.resolve(expr, cur)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Refs returns the parameter objects, the body expressions and the
// captured scope.
func (l *Lambda) Refs() []runtime.Object {
	refs := make([]runtime.Object, 0, len(l.params)+len(l.body)+1)
	for _, p := range l.params {
		if p != nil {
			refs = append(refs, p)
		}
	}
	for _, b := range l.body {
		if b != nil {
			refs = append(refs, b)
		}
	}
	if l.scope != nil {
		refs = append(refs, l.scope)
	}
	return refs
}
