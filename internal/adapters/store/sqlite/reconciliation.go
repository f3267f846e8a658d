package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// ReconciliationLog is a ports.ReconciliationLog over the reconciliation table.
type ReconciliationLog struct {
	db  *DB
	now func() time.Time
}

var _ ports.ReconciliationLog = (*ReconciliationLog)(nil)

// NewReconciliationLog returns a log sharing db with the entity stores.
func NewReconciliationLog(db *DB) *ReconciliationLog {
	return &ReconciliationLog{db: db, now: time.Now}
}

func (l *ReconciliationLog) Record(ctx context.Context, entry ports.ReconciliationEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = l.now().UTC()
	}

	failures, err := json.Marshal(nonNil(entry.Failures))
	if err != nil {
		return fmt.Errorf("encoding failures: %w", err)
	}
	uncompensable, err := json.Marshal(nonNil(entry.Uncompensable))
	if err != nil {
		return fmt.Errorf("encoding uncompensable steps: %w", err)
	}

	_, err = l.db.db.ExecContext(ctx,
		`INSERT INTO reconciliation
		   (id, run_id, operation, failed_step, cause, failures, uncompensable, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.RunID, entry.Operation, entry.FailedStep, entry.Cause,
		string(failures), string(uncompensable), entry.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("recording reconciliation entry %s: %w", entry.ID, err)
	}
	return nil
}

func (l *ReconciliationLog) List(ctx context.Context, includeResolved bool) ([]ports.ReconciliationEntry, error) {
	query := `SELECT id, run_id, operation, failed_step, cause, failures, uncompensable, created_at, resolved_at
	          FROM reconciliation`
	if !includeResolved {
		query += ` WHERE resolved_at IS NULL`
	}
	query += ` ORDER BY created_at DESC, rowid DESC`

	rows, err := l.db.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing reconciliation entries: %w", err)
	}
	defer rows.Close()

	out := []ports.ReconciliationEntry{}
	for rows.Next() {
		var (
			e                       ports.ReconciliationEntry
			failures, uncompensable string
			createdAt               int64
			resolvedAt              sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.RunID, &e.Operation, &e.FailedStep, &e.Cause,
			&failures, &uncompensable, &createdAt, &resolvedAt); err != nil {
			return nil, fmt.Errorf("scanning reconciliation entry: %w", err)
		}
		if err := json.Unmarshal([]byte(failures), &e.Failures); err != nil {
			return nil, fmt.Errorf("decoding failures of %s: %w", e.ID, err)
		}
		if err := json.Unmarshal([]byte(uncompensable), &e.Uncompensable); err != nil {
			return nil, fmt.Errorf("decoding uncompensable steps of %s: %w", e.ID, err)
		}
		e.CreatedAt = time.Unix(0, createdAt).UTC()
		if resolvedAt.Valid {
			t := time.Unix(0, resolvedAt.Int64).UTC()
			e.ResolvedAt = &t
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing reconciliation entries: %w", err)
	}
	return out, nil
}

func (l *ReconciliationLog) Resolve(ctx context.Context, id string) error {
	res, err := l.db.db.ExecContext(ctx,
		`UPDATE reconciliation SET resolved_at = COALESCE(resolved_at, ?) WHERE id = ?`,
		l.now().UTC().UnixNano(), id)
	if err != nil {
		return fmt.Errorf("resolving reconciliation entry %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolving reconciliation entry %s: %w", id, err)
	}
	if n == 0 {
		return domain.NotFoundError("reconciliation entry", id)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
