package interp

import "github.com/mariakhr/go-scheme/internal/runtime"

// builtinFunc is the implementation of one primitive. It receives the
// raw argument vector, terminator included, and the calling scope.
type builtinFunc func(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error)

// Builtin is a primitive callable registered in the global scope under
// a fixed name.
type Builtin struct {
	name string
	fn   builtinFunc
}

// Invoke runs the primitive.
func (b *Builtin) Invoke(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	return b.fn(args, scope)
}

// Name returns the name the primitive is registered under.
func (b *Builtin) Name() string {
	return b.name
}

// Refs returns no edges; primitives hold no heap references.
func (b *Builtin) Refs() []runtime.Object {
	return nil
}
