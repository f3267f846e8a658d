package saga

import (
	"context"
	"reflect"
)

// Step is one unit of work inside an Operation over the shared input I.
// Steps are created with NewStep or Func; the forward and compensating
// actions are invoked only by the Executor.
type Step[I any] interface {
	// Name identifies the step in logs, errors and idempotency keys.
	Name() string
	// Compensable reports whether the step can be undone. A failure after a
	// non-compensable step can never be fully rolled back.
	Compensable() bool

	forward(ctx context.Context, input I) (result, undo any, err error)
	compensate(ctx context.Context, undo any) error
}

type step[I, R, U any] struct {
	name string
	fwd  func(context.Context, I) (R, U, error)
	comp func(context.Context, U) error
}

// NewStep creates a step from a forward action returning a result and an
// undo token, and a compensating action consuming that token. The undo
// token must be sufficient on its own to restore the state the forward
// action changed. A nil compensate marks the step as non-compensable.
//
// A forward action that fails after applying part of its work returns the
// undo token for that part together with the error. The executor then
// compensates it first when unwinding. A zero undo token on failure means
// nothing was applied.
func NewStep[I, R, U any](
	name string,
	forward func(ctx context.Context, input I) (R, U, error),
	compensate func(ctx context.Context, undo U) error,
) Step[I] {
	return &step[I, R, U]{name: name, fwd: forward, comp: compensate}
}

func (s *step[I, R, U]) Name() string      { return s.name }
func (s *step[I, R, U]) Compensable() bool { return s.comp != nil }

func (s *step[I, R, U]) forward(ctx context.Context, input I) (any, any, error) {
	r, u, err := s.fwd(ctx, input)
	if err != nil {
		if s.comp == nil || reflect.ValueOf(&u).Elem().IsZero() {
			return nil, nil, err
		}
		return nil, u, err
	}
	return r, u, nil
}

func (s *step[I, R, U]) compensate(ctx context.Context, undo any) error {
	u, _ := undo.(U)
	return s.comp(ctx, u)
}

// Func creates a step without result or undo token. A nil undo marks the
// step as non-compensable.
func Func[I any](name string, do func(ctx context.Context, input I) error, undo func(ctx context.Context) error) Step[I] {
	var comp func(context.Context, struct{}) error
	if undo != nil {
		comp = func(ctx context.Context, _ struct{}) error { return undo(ctx) }
	}
	return NewStep(name,
		func(ctx context.Context, input I) (struct{}, struct{}, error) {
			return struct{}{}, struct{}{}, do(ctx, input)
		},
		comp,
	)
}
