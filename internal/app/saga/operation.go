// Package saga runs multi-step operations with compensating actions.
//
// An Operation is an ordered list of Steps sharing one input. The Executor
// runs the steps strictly in order. When a step fails, the compensations of
// the steps that already succeeded run in reverse order and the original
// error is returned wrapped in a *Error that reports how the rollback went.
// This is best-effort compensation, not a transaction: a compensation that
// fails is logged and skipped, and a step without compensation makes the
// rollback partial. Partial rollbacks are recorded for operators through
// ports.ReconciliationLog.
//
// Steps that depend on state produced by earlier steps share it through the
// input, typically a pointer to a per-run state struct:
//
//	type deleteBrand struct {
//		id    string
//		links []link.Link
//	}
//
//	op := saga.New[*deleteBrand, struct{}]("DeleteBrand",
//		links.DismissStep(registry, ...),
//		saga.DeleteRecord[catalog.Brand, *deleteBrand]("delete brand", brands, ...),
//	)
//	_, err := op.Run(ctx, exec, &deleteBrand{id: id})
package saga

import (
	"context"
	"fmt"
)

// Operation is a named, ordered list of steps over input I producing O.
type Operation[I, O any] struct {
	name   string
	steps  []Step[I]
	result func(input I, results []any) (O, error)
}

// New creates an operation from steps.
func New[I, O any](name string, steps ...Step[I]) *Operation[I, O] {
	return &Operation[I, O]{name: name, steps: steps}
}

// Name returns the operation name.
func (op *Operation[I, O]) Name() string { return op.name }

// Steps returns the number of steps.
func (op *Operation[I, O]) Steps() int { return len(op.steps) }

// Then appends steps to the operation.
func (op *Operation[I, O]) Then(steps ...Step[I]) *Operation[I, O] {
	op.steps = append(op.steps, steps...)
	return op
}

// WithResult sets a composite result built from the input and the results
// of every step in declaration order. Without it the result is the last
// step's result.
func (op *Operation[I, O]) WithResult(fn func(input I, results []any) (O, error)) *Operation[I, O] {
	op.result = fn
	return op
}

// Run executes the operation. An operation without steps succeeds with the
// zero result.
func (op *Operation[I, O]) Run(ctx context.Context, exec *Executor, input I) (O, error) {
	var zero O

	results, err := execute(ctx, exec, op.name, op.steps, input)
	if err != nil {
		return zero, err
	}

	if op.result != nil {
		return op.result(input, results)
	}
	if len(results) == 0 {
		return zero, nil
	}

	last := results[len(results)-1]
	if last == nil {
		return zero, nil
	}
	out, ok := last.(O)
	if !ok {
		return zero, fmt.Errorf("%w: %s returned %T, want %T", ErrResultType, op.name, last, zero)
	}
	return out, nil
}
