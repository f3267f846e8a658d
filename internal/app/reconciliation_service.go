package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// Compile-time check that ReconciliationService implements ports.ReconciliationService.
var _ ports.ReconciliationService = (*ReconciliationService)(nil)

// ReconciliationService exposes partial-rollback entries to operators. It
// only lists and acknowledges entries; repairing state is a manual task.
type ReconciliationService struct {
	log    ports.ReconciliationLog
	logger *slog.Logger
}

// NewReconciliationService creates a ReconciliationService. If logger is
// nil, a no-op logger is used.
func NewReconciliationService(log ports.ReconciliationLog, logger *slog.Logger) *ReconciliationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ReconciliationService{log: log, logger: logger}
}

// List returns entries newest first.
func (s *ReconciliationService) List(ctx context.Context, includeResolved bool) ([]ports.ReconciliationEntry, error) {
	entries, err := s.log.List(ctx, includeResolved)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list reconciliation entries",
			slog.String("operation", "ListReconciliation"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return entries, nil
}

// Resolve marks an entry as handled.
func (s *ReconciliationService) Resolve(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "resolving reconciliation entry", slog.String("entry_id", id))

	if err := s.log.Resolve(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve reconciliation entry",
			slog.String("operation", "ResolveReconciliation"),
			slog.String("entry_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
