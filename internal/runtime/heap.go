package runtime

// Heap owns every interpreter object. Allocation inserts the object
// into the owned set and returns it; there is no free operation.
// MarkAndSweep is the only way storage is reclaimed.
//
// The heap is shared mutable state with a single implicit owner; it
// must not be entered from more than one goroutine.
type Heap struct {
	objects map[Object]struct{}
}

// NewHeap creates an empty heap.
func NewHeap() *Heap {
	return &Heap{objects: make(map[Object]struct{})}
}

// NewNumber allocates a number.
func (h *Heap) NewNumber(value int32) *Number {
	n := &Number{value: value}
	h.objects[n] = struct{}{}
	return n
}

// NewSymbol allocates a symbol.
func (h *Heap) NewSymbol(name string) *Symbol {
	s := &Symbol{name: name}
	h.objects[s] = struct{}{}
	return s
}

// NewCell allocates a pair. Either field may be nil for the empty list.
func (h *Heap) NewCell(first, second Object) *Cell {
	c := &Cell{first: first, second: second}
	h.objects[c] = struct{}{}
	return c
}

// NewScope allocates a scope with the given parent. Closure calls
// create their call scopes here so the collector can reclaim them.
func (h *Heap) NewScope(parent *Scope) *Scope {
	s := &Scope{parent: parent, bindings: make(map[string]Function)}
	h.objects[s] = struct{}{}
	return s
}

// NewHolder allocates an ObjectHolder around object. scope may be nil
// when the held value needs no environment to resolve further.
func (h *Heap) NewHolder(object Object, scope *Scope) *ObjectHolder {
	o := &ObjectHolder{object: object, scope: scope}
	h.objects[o] = struct{}{}
	return o
}

// Register adopts a callable constructed outside this package, such as
// a primitive or a closure, and returns it.
func (h *Heap) Register(fn Function) Function {
	h.objects[fn] = struct{}{}
	return fn
}

// Size returns the number of objects currently owned by the heap.
func (h *Heap) Size() int {
	return len(h.objects)
}

// MarkAndSweep traces reachability from the direct bindings of root
// and releases every object left unmarked. A nil root releases the
// entire heap. It returns the number of objects released.
//
// The mark set lives with the collector rather than on the objects, so
// every surviving object is trivially unmarked once the trace's
// visited set is dropped.
func (h *Heap) MarkAndSweep(root *Scope) int {
	marked := make(map[Object]struct{}, len(h.objects))
	if root != nil {
		for _, fn := range root.bindings {
			if fn != nil {
				mark(fn, marked)
			}
		}
	}

	released := 0
	for obj := range h.objects {
		if _, ok := marked[obj]; !ok {
			delete(h.objects, obj)
			released++
		}
	}
	return released
}

// mark visits obj and everything transitively reachable through
// declared edges, short-circuiting on revisits so cyclic structures
// terminate.
func mark(obj Object, marked map[Object]struct{}) {
	if obj == nil {
		return
	}
	if _, ok := marked[obj]; ok {
		return
	}
	marked[obj] = struct{}{}
	for _, ref := range obj.Refs() {
		mark(ref, marked)
	}
}
