package interp

import (
	"github.com/mariakhr/go-scheme/internal/errors"
	"github.com/mariakhr/go-scheme/internal/runtime"
)

// numbers checks that every evaluated argument is a number and
// extracts them.
func numbers(args []runtime.Object, name string) ([]*runtime.Number, error) {
	nums := make([]*runtime.Number, len(args))
	for i, arg := range args {
		n, ok := arg.(*runtime.Number)
		if !ok {
			return nil, errors.NewRuntime("%s: expected numbers", name)
		}
		nums[i] = n
	}
	return nums, nil
}

func (ev *evaluator) isNumber(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 1 {
		return nil, errors.NewRuntime("number?: expected 1 argument")
	}
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	_, ok := args[0].(*runtime.Number)
	return ev.truth(scope, ok)
}

// compare implements the variadic chained comparisons. keep reports
// whether an adjacent pair is in order; the chain is true when every
// pair is. Empty and single-argument chains are vacuously true.
func (ev *evaluator) compare(args []runtime.Object, scope *runtime.Scope, name string, keep func(a, b int32) bool) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	nums, err := numbers(args, name)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(nums); i++ {
		if !keep(nums[i].Value(), nums[i+1].Value()) {
			return ev.truth(scope, false)
		}
	}
	return ev.truth(scope, true)
}

func (ev *evaluator) equal(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	return ev.compare(args, scope, "=", func(a, b int32) bool { return a == b })
}

func (ev *evaluator) less(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	return ev.compare(args, scope, "<", func(a, b int32) bool { return a < b })
}

func (ev *evaluator) greater(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	return ev.compare(args, scope, ">", func(a, b int32) bool { return a > b })
}

func (ev *evaluator) lessOrEqual(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	return ev.compare(args, scope, "<=", func(a, b int32) bool { return a <= b })
}

func (ev *evaluator) greaterOrEqual(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	return ev.compare(args, scope, ">=", func(a, b int32) bool { return a >= b })
}

func (ev *evaluator) add(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	nums, err := numbers(args, "+")
	if err != nil {
		return nil, err
	}
	var sum int32
	for _, n := range nums {
		sum += n.Value()
	}
	return ev.heap.NewHolder(ev.heap.NewNumber(sum), nil), nil
}

// sub folds left from the first argument, so a single argument is
// returned unchanged rather than negated.
func (ev *evaluator) sub(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) == 0 {
		return nil, errors.NewRuntime("-: expected >= 1 argument")
	}
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	nums, err := numbers(args, "-")
	if err != nil {
		return nil, err
	}
	result := nums[0].Value()
	for _, n := range nums[1:] {
		result -= n.Value()
	}
	return ev.heap.NewHolder(ev.heap.NewNumber(result), nil), nil
}

func (ev *evaluator) mul(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	nums, err := numbers(args, "*")
	if err != nil {
		return nil, err
	}
	var prod int32 = 1
	for _, n := range nums {
		prod *= n.Value()
	}
	return ev.heap.NewHolder(ev.heap.NewNumber(prod), nil), nil
}

// div folds left with truncation toward zero; a single argument is
// returned unchanged.
func (ev *evaluator) div(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) == 0 {
		return nil, errors.NewRuntime("/: expected >= 1 argument")
	}
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	nums, err := numbers(args, "/")
	if err != nil {
		return nil, err
	}
	result := nums[0].Value()
	for _, n := range nums[1:] {
		if n.Value() == 0 {
			return nil, errors.NewRuntime("/: division by zero")
		}
		result /= n.Value()
	}
	return ev.heap.NewHolder(ev.heap.NewNumber(result), nil), nil
}

func (ev *evaluator) max(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) == 0 {
		return nil, errors.NewRuntime("max: expected >= 1 argument")
	}
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	nums, err := numbers(args, "max")
	if err != nil {
		return nil, err
	}
	best := nums[0].Value()
	for _, n := range nums[1:] {
		if n.Value() > best {
			best = n.Value()
		}
	}
	return ev.heap.NewHolder(ev.heap.NewNumber(best), nil), nil
}

func (ev *evaluator) min(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) == 0 {
		return nil, errors.NewRuntime("min: expected >= 1 argument")
	}
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	nums, err := numbers(args, "min")
	if err != nil {
		return nil, err
	}
	best := nums[0].Value()
	for _, n := range nums[1:] {
		if n.Value() < best {
			best = n.Value()
		}
	}
	return ev.heap.NewHolder(ev.heap.NewNumber(best), nil), nil
}

func (ev *evaluator) abs(args []runtime.Object, scope *runtime.Scope) (runtime.Function, error) {
	args = runtime.SkipLast(args)
	if len(args) != 1 {
		return nil, errors.NewRuntime("abs: expected 1 argument")
	}
	if err := ev.evalArgs(args, scope); err != nil {
		return nil, err
	}
	nums, err := numbers(args, "abs")
	if err != nil {
		return nil, err
	}
	value := nums[0].Value()
	if value < 0 {
		value = -value
	}
	return ev.heap.NewHolder(ev.heap.NewNumber(value), nil), nil
}
