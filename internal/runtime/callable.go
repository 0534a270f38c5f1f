package runtime

import "github.com/mariakhr/go-scheme/internal/errors"

// Function is an invocable heap object. Invoke receives the raw,
// unevaluated argument objects plus the calling scope and returns the
// resulting callable. A nil result means the form produced nothing,
// as define and set! do.
//
// When invoked for a combination, the argument slice carries the
// argument list's terminator as its final element; primitives and
// closures drop it first (see SkipLast). An ObjectHolder does not: it
// accepts only the empty vector it receives when an atom is resolved.
type Function interface {
	Object
	Invoke(args []Object, scope *Scope) (Function, error)
}

// SkipLast drops the trailing terminator from an argument vector.
func SkipLast(args []Object) []Object {
	if len(args) == 0 {
		return args
	}
	return args[:len(args)-1]
}

// ObjectHolder wraps a data object together with the scope it was
// resolved in. Every evaluation result is a callable, so data travels
// wrapped in a holder; the scope lets car and cdr re-resolve symbols
// found inside the held value. A holder bound in a scope additionally
// carries its binding name for later inspection.
type ObjectHolder struct {
	object Object
	scope  *Scope
	name   string
}

// Invoke with no arguments yields the holder itself; any arguments
// are an error.
func (o *ObjectHolder) Invoke(args []Object, _ *Scope) (Function, error) {
	if len(args) != 0 {
		return nil, errors.NewRuntime("ObjectHolder: no arguments expected")
	}
	return o, nil
}

// Object returns the held data object.
func (o *ObjectHolder) Object() Object {
	return o.object
}

// Scope returns the scope captured at resolution time, which may be nil.
func (o *ObjectHolder) Scope() *Scope {
	return o.scope
}

// Name returns the display name set when the holder was bound.
func (o *ObjectHolder) Name() string {
	return o.name
}

// SetObject replaces the held object. The collector sees the new edge
// on its next trace.
func (o *ObjectHolder) SetObject(obj Object) {
	o.object = obj
}

// SetName records the holder's binding name.
func (o *ObjectHolder) SetName(name string) {
	o.name = name
}

// Refs returns the held object and the captured scope.
func (o *ObjectHolder) Refs() []Object {
	refs := make([]Object, 0, 2)
	if o.object != nil {
		refs = append(refs, o.object)
	}
	if o.scope != nil {
		refs = append(refs, o.scope)
	}
	return refs
}
