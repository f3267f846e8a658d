package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// Store is a ports.EntityStore for one catalog kind, backed by the shared
// records table.
type Store[T any, P catalog.RecordPtr[T]] struct {
	db   *DB
	kind string
	now  func() time.Time
}

var _ ports.EntityStore[catalog.Menu] = (*Store[catalog.Menu, *catalog.Menu])(nil)

// NewStore returns the store for T's kind.
func NewStore[T any, P catalog.RecordPtr[T]](db *DB) *Store[T, P] {
	var zero T
	return &Store[T, P]{db: db, kind: P(&zero).Kind(), now: time.Now}
}

func (s *Store[T, P]) Create(ctx context.Context, rec *T) (*T, error) {
	cp := *rec
	meta := P(&cp).Meta()
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	now := s.now().UTC()
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = now
	}
	if meta.UpdatedAt.IsZero() {
		meta.UpdatedAt = now
	}

	payload, err := json.Marshal(&cp)
	if err != nil {
		return nil, fmt.Errorf("encoding %s %s: %w", s.kind, meta.ID, err)
	}

	_, err = s.db.db.ExecContext(ctx,
		`INSERT INTO records (kind, id, owner_id, payload, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.kind, meta.ID, P(&cp).Owner(), string(payload), meta.CreatedAt.UnixNano(), meta.UpdatedAt.UnixNano())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s %s: %w", s.kind, meta.ID, domain.ErrConflict)
		}
		return nil, fmt.Errorf("inserting %s %s: %w", s.kind, meta.ID, err)
	}
	return &cp, nil
}

func (s *Store[T, P]) Retrieve(ctx context.Context, id string) (*T, error) {
	var payload string
	err := s.db.db.QueryRowContext(ctx,
		`SELECT payload FROM records WHERE kind = ? AND id = ?`, s.kind, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError(s.kind, id)
	}
	if err != nil {
		return nil, fmt.Errorf("selecting %s %s: %w", s.kind, id, err)
	}
	return s.decode(payload)
}

func (s *Store[T, P]) Update(ctx context.Context, rec *T) (*T, error) {
	cp := *rec
	meta := P(&cp).Meta()

	existing, err := s.Retrieve(ctx, meta.ID)
	if err != nil {
		return nil, err
	}
	meta.CreatedAt = P(existing).Meta().CreatedAt
	meta.UpdatedAt = s.now().UTC()

	payload, err := json.Marshal(&cp)
	if err != nil {
		return nil, fmt.Errorf("encoding %s %s: %w", s.kind, meta.ID, err)
	}

	res, err := s.db.db.ExecContext(ctx,
		`UPDATE records SET owner_id = ?, payload = ?, updated_at = ? WHERE kind = ? AND id = ?`,
		P(&cp).Owner(), string(payload), meta.UpdatedAt.UnixNano(), s.kind, meta.ID)
	if err != nil {
		return nil, fmt.Errorf("updating %s %s: %w", s.kind, meta.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, domain.NotFoundError(s.kind, meta.ID)
	}
	return &cp, nil
}

func (s *Store[T, P]) Delete(ctx context.Context, id string) error {
	res, err := s.db.db.ExecContext(ctx, `DELETE FROM records WHERE kind = ? AND id = ?`, s.kind, id)
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", s.kind, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", s.kind, id, err)
	}
	if n == 0 {
		return domain.NotFoundError(s.kind, id)
	}
	return nil
}

func (s *Store[T, P]) List(ctx context.Context, filter ports.ListFilter) ([]T, error) {
	query := `SELECT payload FROM records WHERE kind = ?`
	args := []any{s.kind}
	if filter.OwnerID != "" {
		query += ` AND owner_id = ?`
		args = append(args, filter.OwnerID)
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.db.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.kind, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", s.kind, err)
		}
		rec, err := s.decode(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.kind, err)
	}
	return out, nil
}

func (s *Store[T, P]) decode(payload string) (*T, error) {
	var rec T
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, fmt.Errorf("decoding %s payload: %w", s.kind, err)
	}
	return &rec, nil
}
