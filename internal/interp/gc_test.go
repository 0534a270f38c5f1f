package interp

import "testing"

func TestHeapStableAcrossPureQueries(t *testing.T) {
	i := New()
	defer i.Close()

	base := i.HeapSize()
	for _, query := range []string{"(+ 1 2)", "(list 1 2 3)", "((lambda (x) (* x x)) 7)", "'(a b c)"} {
		mustRun(t, i, query)
		if got := i.HeapSize(); got != base {
			t.Errorf("heap size after %q = %d, want %d", query, got, base)
		}
	}
}

func TestHeapSizeIsFunctionOfGlobalBindings(t *testing.T) {
	i := New()
	defer i.Close()

	base := i.HeapSize()
	mustRun(t, i, "(define x 10)")
	withX := i.HeapSize()
	if withX <= base {
		t.Fatalf("heap did not grow after define: %d -> %d", base, withX)
	}

	// Further pure queries leave the live set unchanged.
	mustRun(t, i, "(+ x 1)")
	mustRun(t, i, "(list x x x)")
	if got := i.HeapSize(); got != withX {
		t.Errorf("heap size = %d, want %d", got, withX)
	}

	// Rebinding releases the old value's objects.
	mustRun(t, i, "(define x 20)")
	if got := i.HeapSize(); got != withX {
		t.Errorf("heap size after rebinding = %d, want %d", got, withX)
	}
}

func TestDefinedValuesSurviveCollection(t *testing.T) {
	i := New()
	defer i.Close()

	mustRun(t, i, "(define l (list 1 2 3))")
	// The per-query collection ran; the list is still intact.
	if got := mustRun(t, i, "l"); got != "(1 2 3)" {
		t.Errorf("l = %q, want (1 2 3)", got)
	}
	if got := mustRun(t, i, "(list-ref l 2)"); got != "3" {
		t.Errorf("list-ref = %q, want 3", got)
	}
}

func TestClosureEnvironmentSurvivesCollection(t *testing.T) {
	i := New()
	defer i.Close()

	mustRun(t, i, "(define (adder n) (lambda (m) (+ n m)))")
	mustRun(t, i, "(define add3 (adder 3))")
	// add3's captured scope chain must survive the collections run by
	// the two defines and the calls in between.
	for range 3 {
		if got := mustRun(t, i, "(add3 4)"); got != "7" {
			t.Fatalf("add3 = %q, want 7", got)
		}
	}
}

func TestRecursiveClosureSurvivesCollection(t *testing.T) {
	// The closure's captured scope is the global scope that binds the
	// closure itself; the cyclic trace must terminate and keep it.
	i := New()
	defer i.Close()

	mustRun(t, i, "(define (fact n) (if (= n 1) 1 (* n (fact (- n 1)))))")
	size := i.HeapSize()
	if got := mustRun(t, i, "(fact 6)"); got != "720" {
		t.Fatalf("fact = %q, want 720", got)
	}
	if got := i.HeapSize(); got != size {
		t.Errorf("heap size after call = %d, want %d", got, size)
	}
}

func TestCloseReleasesEverything(t *testing.T) {
	i := New()
	mustRun(t, i, "(define x (list 1 2 3))")

	i.Close()
	if got := i.HeapSize(); got != 0 {
		t.Errorf("heap size after Close = %d, want 0", got)
	}
}
