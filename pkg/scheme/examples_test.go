package scheme

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestExampleTranscripts snapshots whole session transcripts so
// output-shape regressions across the surface of the language show up
// as a single readable diff.
func TestExampleTranscripts(t *testing.T) {
	transcripts := []struct {
		name    string
		queries []string
	}{
		{
			name: "arithmetic",
			queries: []string{
				"(+ 1 2 3)",
				"(- 10 1 2)",
				"(* 2 3 4)",
				"(/ 100 5 2)",
				"(max 1 5 3)",
				"(min 4 2 8)",
				"(abs -4)",
				"(+ (* 2 3) (- 10 4))",
			},
		},
		{
			name: "booleans",
			queries: []string{
				"#t",
				"#f",
				"(not #f)",
				"(and 1 2 3)",
				"(or #f 5)",
				"(boolean? #t)",
				"(= 1 1 1)",
				"(< 1 2 3)",
			},
		},
		{
			name: "lists",
			queries: []string{
				"'(1 2 3)",
				"(cons 1 2)",
				"(list 1 2 3)",
				"(car '(1 2 3))",
				"(cdr '(1 2 3))",
				"(pair? '(1 2))",
				"(null? '())",
				"(list-tail '(1 2 3) 1)",
				"'(1 2 . 3)",
			},
		},
		{
			name: "definitions and closures",
			queries: []string{
				"(define x 10)",
				"(+ x 5)",
				"(define (square n) (* n n))",
				"(square 9)",
				"(define (adder n) (lambda (m) (+ n m)))",
				"(define add3 (adder 3))",
				"(add3 4)",
				"(set! x 20)",
				"x",
			},
		},
		{
			name: "recursion",
			queries: []string{
				"(define (fact n) (if (= n 1) 1 (* n (fact (- n 1)))))",
				"(fact 5)",
				"(fact 10)",
			},
		},
	}

	for _, tt := range transcripts {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := New()
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			defer engine.Close()

			var sb strings.Builder
			for _, query := range tt.queries {
				result, err := engine.Run(query)
				if err != nil {
					t.Fatalf("Run(%q) error: %v", query, err)
				}
				fmt.Fprintf(&sb, "> %s\n%s\n", query, result)
			}
			snaps.MatchSnapshot(t, sb.String())
		})
	}
}
