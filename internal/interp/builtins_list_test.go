package interp

import "testing"

func TestListOperations(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"(list)", "()"},
		{"(list 1 2 3)", "(1 2 3)"},
		{"(cons 1 2)", "(1 . 2)"},
		{"(cons 1 '())", "(1 quote ())"}, // the quote form itself is consed, unevaluated
		{"(car '(1 2 3))", "1"},
		{"(car (cons 1 2))", "1"},
		{"(cdr '(1 2 3))", "(2 3)"},
		{"(cdr '(1 2))", "(2)"},
		{"(cdr '(1))", "()"},
		{"(cdr (cons 1 2))", "2"},
		{"(car (cdr '(1 2 3)))", "2"},
		{"(list-ref '(10 20 30) 0)", "10"},
		{"(list-ref '(10 20 30) 2)", "30"},
		{"(list-tail '(1 2 3) 0)", "(1 2 3)"},
		{"(list-tail '(1 2 3) 1)", "(2 3)"},
		{"(list-tail '(1 2 3) 3)", "()"},
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

func TestListPredicates(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"(pair? '(1 2))", "#t"},
		{"(pair? (cons 1 2))", "#t"},
		{"(pair? '())", "#f"},
		{"(pair? 5)", "#f"},
		{"(pair? 'a)", "#f"},
		{"(null? '())", "#t"},
		{"(null? '(1))", "#f"},
		{"(null? 0)", "#f"},
		{"(list? '())", "#t"},
		{"(list? '(1 2 3))", "#t"},
		{"(list? (cons 1 2))", "#f"},
		{"(list? 5)", "#f"},
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

func TestListErrors(t *testing.T) {
	for _, query := range []string{
		"(car '())",
		"(cdr '())",
		"(car 5)",
		"(cons 1)",
		"(list-ref '(1 2) 2)",
		"(list-ref '(1 2) -1)",
		"(list-tail '(1 2) 3)",
		"(list-ref '(1 2) 'x)",
	} {
		t.Run(query, func(t *testing.T) {
			i := New()
			defer i.Close()
			if _, err := i.Run(query); err == nil {
				t.Errorf("Run(%q) succeeded, want an error", query)
			}
		})
	}
}
