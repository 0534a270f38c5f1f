package scheme

import "testing"

func TestEngineScenarios(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer engine.Close()

	steps := []struct{ query, want string }{
		{"(+ 1 2 3)", "6"},
		{"(if (> 3 2) 'yes 'no)", "yes"},
		{"(define x 10)", ""},
		{"(+ x 5)", "15"},
		{"(list 1 2 3)", "(1 2 3)"},
		{"(cons 1 2)", "(1 . 2)"},
		{"((lambda (x) (* x x)) 7)", "49"},
	}
	for _, step := range steps {
		got, err := engine.Run(step.query)
		if err != nil {
			t.Fatalf("Run(%q) error: %v", step.query, err)
		}
		if got != step.want {
			t.Errorf("Run(%q) = %q, want %q", step.query, got, step.want)
		}
	}
}

func TestEngineSessionsAreIndependent(t *testing.T) {
	first, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer first.Close()
	second, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer second.Close()

	if _, err := first.Run("(define x 1)"); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if _, err := second.Run("x"); err == nil {
		t.Error("definition leaked between engines")
	}
}

func TestEngineErrorsKeepSessionUsable(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer engine.Close()

	if _, err := engine.Run("(car 5)"); err == nil {
		t.Fatal("expected an error")
	}
	got, err := engine.Run("(+ 1 1)")
	if err != nil {
		t.Fatalf("Run after error: %v", err)
	}
	if got != "2" {
		t.Errorf("Run = %q, want 2", got)
	}
}

func TestEngineClose(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if _, err := engine.Run("(define x 10)"); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	engine.Close()
	if got := engine.HeapSize(); got != 0 {
		t.Errorf("HeapSize after Close = %d, want 0", got)
	}
}
