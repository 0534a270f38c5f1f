package interp

import "testing"

// The evaluation protocol treats every top-level expression as a
// combination: atoms degenerate to resolving themselves, and a bare
// primitive name is invoked with no arguments.
func TestEvaluationProtocol(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"5", "5"},
		{"#t", "#t"},
		{"#f", "#f"},
		{"+", "0"},  // bare + runs with the empty sum
		{"*", "1"},  // bare * runs with the empty product
		{"=", "#t"}, // empty comparison chain
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			i := New()
			defer i.Close()
			if got := mustRun(t, i, tt.query); got != tt.want {
				t.Errorf("Run(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestBoundValueInvokedWithArgumentsFails(t *testing.T) {
	i := New()
	defer i.Close()
	mustRun(t, i, "(define x 10)")
	// x is a data carrier, not a procedure.
	if _, err := i.Run("(x 1)"); err == nil {
		t.Error("invoking a data binding with arguments succeeded")
	}
}
