package sqlite

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/link"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// LinkStore is a ports.LinkStore over the links table.
type LinkStore struct {
	db *DB
}

var _ ports.LinkStore = (*LinkStore)(nil)

// NewLinkStore returns a link store sharing db with the entity stores.
func NewLinkStore(db *DB) *LinkStore {
	return &LinkStore{db: db}
}

func (s *LinkStore) Put(ctx context.Context, l link.Link) (bool, error) {
	from, to := l.From(), l.To()
	res, err := s.db.db.ExecContext(ctx,
		`INSERT INTO links (link_key, from_entity, from_attr, from_value, to_entity, to_attr, to_value)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (link_key) DO NOTHING`,
		l.Key(), from.Entity, from.Key, from.Value, to.Entity, to.Key, to.Value)
	if err != nil {
		return false, fmt.Errorf("inserting link %s: %w", l.Key(), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("inserting link %s: %w", l.Key(), err)
	}
	return n > 0, nil
}

func (s *LinkStore) Remove(ctx context.Context, l link.Link) (bool, error) {
	res, err := s.db.db.ExecContext(ctx, `DELETE FROM links WHERE link_key = ?`, l.Key())
	if err != nil {
		return false, fmt.Errorf("deleting link %s: %w", l.Key(), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting link %s: %w", l.Key(), err)
	}
	return n > 0, nil
}

func (s *LinkStore) Find(ctx context.Context, ref link.Ref) ([]link.Link, error) {
	rows, err := s.db.db.QueryContext(ctx,
		`SELECT from_entity, from_attr, from_value, to_entity, to_attr, to_value FROM links
		 WHERE (from_entity = ?1 AND from_attr = ?2 AND from_value = ?3)
		    OR (to_entity = ?1 AND to_attr = ?2 AND to_value = ?3)
		 ORDER BY link_key`,
		ref.Entity, ref.Key, ref.Value)
	if err != nil {
		return nil, fmt.Errorf("finding links for %s.%s=%s: %w", ref.Entity, ref.Key, ref.Value, err)
	}
	defer rows.Close()

	var out []link.Link
	for rows.Next() {
		var l link.Link
		if err := rows.Scan(
			&l.Definition.From.Entity, &l.Definition.From.Key, &l.FromValue,
			&l.Definition.To.Entity, &l.Definition.To.Key, &l.ToValue,
		); err != nil {
			return nil, fmt.Errorf("scanning link: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("finding links: %w", err)
	}
	return out, nil
}
