// Package runtime defines the interpreter's heap objects and the
// mark-and-sweep heap that owns them.
//
// Every value a query touches lives on a single Heap: numbers, symbols
// and cells produced by the parser, scopes and closures produced by
// evaluation, and the holders that carry data between callables. The
// empty list is not an object; it is represented by a nil Object
// throughout the runtime, the parser and the serializer.
package runtime

// Object is a heap-managed interpreter value.
//
// Refs returns the heap references the object currently holds. These
// edges are exactly what the collector follows when tracing, so an
// object that gains a reference must expose it here. Nil entries are
// permitted and stand for the empty list.
type Object interface {
	Refs() []Object
}

// Number is a 32-bit signed integer.
type Number struct {
	value int32
}

// Value returns the integer value.
func (n *Number) Value() int32 {
	return n.value
}

// Refs returns no edges; numbers reference nothing.
func (n *Number) Refs() []Object {
	return nil
}

// Symbol is a textual name. Equality between symbols is name equality;
// distinct symbol objects may share a name.
type Symbol struct {
	name string
}

// Name returns the symbol's text.
func (s *Symbol) Name() string {
	return s.name
}

// Refs returns no edges; symbols reference nothing.
func (s *Symbol) Refs() []Object {
	return nil
}

// Cell is an ordered pair. Lists are right-nested cells whose final
// second field is nil; an improper list terminates in a non-nil
// non-cell object.
type Cell struct {
	first  Object
	second Object
}

// First returns the first field of the pair.
func (c *Cell) First() Object {
	return c.first
}

// Second returns the second field of the pair.
func (c *Cell) Second() Object {
	return c.second
}

// Refs returns the pair's two fields.
func (c *Cell) Refs() []Object {
	return []Object{c.first, c.second}
}

// ListToSlice flattens a cell chain into a slice. The chain's
// terminator is always appended as the final element, so a proper list
// of n elements yields n+1 entries ending in nil, and a lone atom
// yields a single-element slice holding the atom itself.
func ListToSlice(obj Object) []Object {
	var items []Object
	for {
		cell, ok := obj.(*Cell)
		if !ok {
			break
		}
		items = append(items, cell.first)
		obj = cell.second
	}
	return append(items, obj)
}

// SliceToList rebuilds a cell chain from a slice in ListToSlice form:
// the final element becomes the chain's terminator. An empty slice is
// the empty list and a single-element slice is the element itself.
func SliceToList(h *Heap, items []Object) Object {
	if len(items) == 0 {
		return nil
	}
	if len(items) == 1 {
		return items[0]
	}
	obj := h.NewCell(items[len(items)-2], items[len(items)-1])
	for i := len(items) - 3; i >= 0; i-- {
		obj = h.NewCell(items[i], obj)
	}
	return obj
}
