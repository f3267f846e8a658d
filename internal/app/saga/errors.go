package saga

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

var (
	// ErrNeedsReconciliation matches a *Error whose rollback was partial.
	ErrNeedsReconciliation = errors.New("saga: needs reconciliation")
	// ErrRecovered wraps a panic raised by a forward action.
	ErrRecovered = errors.New("saga: recovered from panic")
	// ErrResultType is returned when the last step's result is not the
	// operation's result type and no composite result was configured.
	ErrResultType = errors.New("saga: unexpected result type")
)

// Report describes the outcome of unwinding a failed operation.
type Report struct {
	// Compensated lists the steps whose compensation succeeded, in the
	// order they ran (most recent step first). A failing step that returned
	// a partial undo token appears here too once its part is undone.
	Compensated []string
	// Failures lists compensations that returned an error.
	Failures []ports.CompensationFailure
	// Uncompensable lists committed steps that had no compensation.
	Uncompensable []string
}

// FullyCompensated reports whether every committed step was undone.
func (r Report) FullyCompensated() bool {
	return len(r.Failures) == 0 && len(r.Uncompensable) == 0
}

// NeedsReconciliation reports whether an operator has to repair state.
func (r Report) NeedsReconciliation() bool { return !r.FullyCompensated() }

// Error is returned by Operation.Run when a step fails. Unwrap yields the
// step's original error, so errors.Is and errors.As see the root cause.
type Error struct {
	Operation string
	Step      string
	// Index is the 1-based position of the failed step.
	Index  int
	RunID  string
	Err    error
	Report Report
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: step %d (%s): %v", e.Operation, e.Index, e.Step, e.Err)
	if len(e.Report.Failures) > 0 {
		fmt.Fprintf(&b, " [%d compensation(s) failed]", len(e.Report.Failures))
	}
	if len(e.Report.Uncompensable) > 0 {
		fmt.Fprintf(&b, " [not compensable: %s]", strings.Join(e.Report.Uncompensable, ", "))
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches ErrNeedsReconciliation when the rollback was partial.
func (e *Error) Is(target error) bool {
	return target == ErrNeedsReconciliation && e.Report.NeedsReconciliation()
}

// AsError extracts a *Error from err.
func AsError(err error) (*Error, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
