package runtime

import (
	"fmt"
	"strconv"
)

// Serialize renders obj in the interpreter's printed form. A nil
// object is the empty list. Lists print space-separated inside one
// pair of parentheses; an improper tail prints after a dot.
func Serialize(obj Object) string {
	switch v := obj.(type) {
	case nil:
		return "()"
	case *Number:
		return strconv.FormatInt(int64(v.Value()), 10)
	case *Symbol:
		return v.Name()
	case *Cell:
		first := Serialize(v.First())
		second := v.Second()
		if second == nil {
			return "(" + first + ")"
		}
		if _, ok := second.(*Cell); !ok {
			return "(" + first + " . " + Serialize(second) + ")"
		}
		// Splice the tail's elements into the same parentheses.
		rest := Serialize(second)
		return "(" + first + " " + rest[1:len(rest)-1] + ")"
	default:
		// Scopes and callables never reach the serializer in
		// well-formed programs.
		panic(fmt.Sprintf("serialize: unexpected object %T", obj))
	}
}
