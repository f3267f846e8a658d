package saga

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/catalog-admin-service/internal/platform/logging"
	"github.com/jsamuelsen11/catalog-admin-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

const tracerName = "github.com/jsamuelsen11/catalog-admin-service/internal/app/saga"

// Result values recorded on saga metrics.
const (
	ResultCommitted   = "committed"
	ResultCompensated = "compensated"
	ResultPartial     = "partial"
	ResultSucceeded   = "succeeded"
	ResultFailed      = "failed"
)

// Executor runs operations. It is safe for concurrent use; runs share no
// state and are not isolated from each other.
type Executor struct {
	logger              *slog.Logger
	tracer              trace.Tracer
	metrics             *telemetry.Metrics
	reconciliation      ports.ReconciliationLog
	compensationTimeout time.Duration
	newRunID            func() string
}

// Option configures an Executor.
type Option func(*Executor)

// WithMetrics records saga counters on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(e *Executor) { e.metrics = m }
}

// WithTracer replaces the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(e *Executor) { e.tracer = t }
}

// WithReconciliationLog records an entry for every partially compensated run.
func WithReconciliationLog(l ports.ReconciliationLog) Option {
	return func(e *Executor) { e.reconciliation = l }
}

// WithCompensationTimeout bounds each compensating action. Zero means no
// bound.
func WithCompensationTimeout(d time.Duration) Option {
	return func(e *Executor) { e.compensationTimeout = d }
}

// NewExecutor creates an Executor. The logger is used when the run context
// carries none. If logger is nil, a no-op logger is used.
func NewExecutor(logger *slog.Logger, opts ...Option) *Executor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	e := &Executor{
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type entry[I any] struct {
	info StepInfo
	step Step[I]
	undo any
}

// execute runs steps in order and returns every step's result. On failure
// it unwinds the committed steps in reverse, starting with whatever part
// of the failing step was applied, and returns a *Error.
func execute[I any](ctx context.Context, e *Executor, name string, steps []Step[I], input I) ([]any, error) {
	runID := e.newRunID()
	ctx = logging.With(ctx, e.logger,
		slog.String("operation", name),
		slog.String("run_id", runID),
	)
	logger := logging.FromContext(ctx)

	ctx, span := e.tracer.Start(ctx, "saga "+name, trace.WithAttributes(
		attribute.String("saga.operation", name),
		attribute.String("saga.run_id", runID),
		attribute.Int("saga.steps", len(steps)),
	))
	defer span.End()

	results := make([]any, 0, len(steps))
	stack := make([]entry[I], 0, len(steps))

	for i, s := range steps {
		info := StepInfo{Operation: name, RunID: runID, Step: s.Name(), Index: i + 1}

		logger.DebugContext(ctx, "executing step",
			slog.Int("step", i+1),
			slog.Int("total", len(steps)),
			slog.String("action", s.Name()),
		)

		result, undo, err := invokeForward(withStepInfo(ctx, info), s, input)
		if err != nil {
			logger.ErrorContext(ctx, "step failed, initiating compensation",
				slog.Int("failed_step", i+1),
				slog.String("action", s.Name()),
				slog.Any("error", err),
			)

			if undo != nil {
				logger.WarnContext(ctx, "step failed after partial changes",
					slog.Int("failed_step", i+1),
					slog.String("action", s.Name()),
				)
				stack = append(stack, entry[I]{info: info, step: s, undo: undo})
			}

			report := unwind(ctx, e, name, stack)
			serr := &Error{Operation: name, Step: s.Name(), Index: i + 1, RunID: runID, Err: err, Report: report}

			outcome := ResultCompensated
			if report.NeedsReconciliation() {
				outcome = ResultPartial
				e.recordReconciliation(ctx, serr)
			}
			e.countOperation(ctx, name, outcome)

			span.RecordError(err)
			span.SetStatus(codes.Error, serr.Error())
			span.SetAttributes(attribute.String("saga.failed_step", s.Name()), attribute.String("saga.result", outcome))
			return nil, serr
		}

		results = append(results, result)
		stack = append(stack, entry[I]{info: info, step: s, undo: undo})
	}

	e.countOperation(ctx, name, ResultCommitted)
	span.SetAttributes(attribute.String("saga.result", ResultCommitted))
	return results, nil
}

// invokeForward runs the forward action, converting a panic into an error.
func invokeForward[I any](ctx context.Context, s Step[I], input I) (result, undo any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRecovered, r)
		}
	}()
	return s.forward(ctx, input)
}

// unwind compensates the stack top to bottom. A failing compensation is
// logged and counted; the remaining entries are still compensated.
func unwind[I any](ctx context.Context, e *Executor, name string, stack []entry[I]) Report {
	logger := logging.FromContext(ctx)
	var report Report

	// Compensations must run even if the caller has gone away.
	cctx := context.WithoutCancel(ctx)

	for i := len(stack) - 1; i >= 0; i-- {
		it := stack[i]
		if !it.step.Compensable() {
			logger.WarnContext(ctx, "step has no compensation, rollback is partial",
				slog.Int("step", it.info.Index),
				slog.String("action", it.step.Name()),
			)
			report.Uncompensable = append(report.Uncompensable, it.step.Name())
			continue
		}

		logger.InfoContext(ctx, "compensating step",
			slog.Int("step", it.info.Index),
			slog.String("action", it.step.Name()),
		)

		if err := it.compensate(withStepInfo(cctx, it.info), e.compensationTimeout); err != nil {
			logger.ErrorContext(ctx, "compensation failed",
				slog.Int("step", it.info.Index),
				slog.String("action", it.step.Name()),
				slog.Any("error", err),
			)
			report.Failures = append(report.Failures, ports.CompensationFailure{
				Step:  it.step.Name(),
				Index: it.info.Index,
				Error: err.Error(),
			})
			e.countCompensation(ctx, name, ResultFailed)
			continue
		}

		report.Compensated = append(report.Compensated, it.step.Name())
		e.countCompensation(ctx, name, ResultSucceeded)
	}

	return report
}

func (it entry[I]) compensate(ctx context.Context, timeout time.Duration) (err error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRecovered, r)
		}
	}()
	return it.step.compensate(ctx, it.undo)
}

func (e *Executor) recordReconciliation(ctx context.Context, serr *Error) {
	if e.reconciliation == nil {
		return
	}

	entry := ports.ReconciliationEntry{
		RunID:         serr.RunID,
		Operation:     serr.Operation,
		FailedStep:    serr.Step,
		Cause:         serr.Err.Error(),
		Failures:      serr.Report.Failures,
		Uncompensable: serr.Report.Uncompensable,
	}
	if err := e.reconciliation.Record(context.WithoutCancel(ctx), entry); err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "failed to record reconciliation entry",
			slog.String("failed_step", serr.Step),
			slog.Any("error", errors.Join(err, serr)),
		)
	}
}

func (e *Executor) countOperation(ctx context.Context, name, result string) {
	if e.metrics == nil || e.metrics.SagaOperationTotal == nil {
		return
	}
	e.metrics.SagaOperationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(name),
		telemetry.AttrResult.String(result),
	))
}

func (e *Executor) countCompensation(ctx context.Context, name, result string) {
	if e.metrics == nil || e.metrics.SagaCompensationTotal == nil {
		return
	}
	e.metrics.SagaCompensationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(name),
		telemetry.AttrResult.String(result),
	))
}
