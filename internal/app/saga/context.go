package saga

import (
	"context"
	"fmt"
)

type stepInfoKey struct{}

// StepInfo identifies the step currently executing or compensating.
type StepInfo struct {
	Operation string
	RunID     string
	Step      string
	Index     int
}

// IdempotencyKey is unique per step execution of a run. Adapters that call
// external systems can forward it to deduplicate retried requests.
func (i StepInfo) IdempotencyKey() string {
	return fmt.Sprintf("%s/%d/%s", i.RunID, i.Index, i.Step)
}

func withStepInfo(ctx context.Context, info StepInfo) context.Context {
	return context.WithValue(ctx, stepInfoKey{}, info)
}

// StepInfoFromContext returns the step info stored by the Executor.
func StepInfoFromContext(ctx context.Context) (StepInfo, bool) {
	info, ok := ctx.Value(stepInfoKey{}).(StepInfo)
	return info, ok
}
