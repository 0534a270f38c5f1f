package runtime

import "github.com/mariakhr/go-scheme/internal/errors"

// Scope is a lexical environment: a mapping from names to callables
// with an optional parent forming a chain. Scopes are heap objects so
// that closures can retain them and the collector can trace them.
//
// Name resolution searches the current scope first, then the parent
// chain. Put always binds in the current scope; Set rebinds wherever
// the name is already bound.
type Scope struct {
	parent   *Scope
	bindings map[string]Function
}

// NewScope creates a scope that is not owned by any heap. The session
// uses this for the global scope, which outlives every collection; all
// other scopes are allocated with Heap.NewScope.
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, bindings: make(map[string]Function)}
}

// Put unconditionally binds name in this scope, replacing any prior
// binding here. If fn is an ObjectHolder its display name is set to
// the binding name.
func (s *Scope) Put(name string, fn Function) {
	if holder, ok := fn.(*ObjectHolder); ok {
		holder.SetName(name)
	}
	s.bindings[name] = fn
}

// Set walks the chain until it finds an existing binding for name and
// rebinds it in place. A name bound nowhere in the chain is a name
// error.
func (s *Scope) Set(name string, fn Function) error {
	for cur := s; cur != nil; cur = cur.parent {
		if _, ok := cur.bindings[name]; ok {
			cur.bindings[name] = fn
			return nil
		}
	}
	return errors.NewName("Invalid name: %s", name)
}

// Get resolves name through the chain. A missing name is a name error.
func (s *Scope) Get(name string) (Function, error) {
	for cur := s; cur != nil; cur = cur.parent {
		if fn, ok := cur.bindings[name]; ok {
			return fn, nil
		}
	}
	return nil, errors.NewName("Invalid name: %s", name)
}

// Parent returns the enclosing scope, or nil for the global scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Refs returns the parent scope and every bound callable.
func (s *Scope) Refs() []Object {
	refs := make([]Object, 0, len(s.bindings)+1)
	if s.parent != nil {
		refs = append(refs, s.parent)
	}
	for _, fn := range s.bindings {
		if fn != nil {
			refs = append(refs, fn)
		}
	}
	return refs
}
