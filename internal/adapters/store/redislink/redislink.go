// Package redislink provides a Redis implementation of ports.LinkStore.
//
// Each link is stored once in a hash keyed by its canonical key. Two sets,
// one per endpoint, index the canonical keys touching that endpoint so Find
// is a set lookup followed by one HMGET.
package redislink

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/link"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

const defaultPrefix = "catalog:links"

var (
	_ ports.LinkStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store keeps links in Redis under a key prefix.
type Store struct {
	rdb    redis.UniversalClient
	prefix string
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix overrides the key prefix, which defaults to "catalog:links".
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// New returns a Store using rdb.
func New(rdb redis.UniversalClient, opts ...Option) *Store {
	s := &Store{rdb: rdb, prefix: defaultPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) linksKey() string { return s.prefix + ":all" }

func (s *Store) refKey(ref link.Ref) string {
	return fmt.Sprintf("%s:ref:%s.%s=%s", s.prefix, ref.Entity, ref.Key, ref.Value)
}

func (s *Store) Put(ctx context.Context, l link.Link) (bool, error) {
	payload, err := json.Marshal(l)
	if err != nil {
		return false, fmt.Errorf("encoding link %s: %w", l.Key(), err)
	}

	var added *redis.BoolCmd
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		added = pipe.HSetNX(ctx, s.linksKey(), l.Key(), payload)
		pipe.SAdd(ctx, s.refKey(l.From()), l.Key())
		pipe.SAdd(ctx, s.refKey(l.To()), l.Key())
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("storing link %s: %w", l.Key(), err)
	}
	return added.Val(), nil
}

func (s *Store) Remove(ctx context.Context, l link.Link) (bool, error) {
	var removed *redis.IntCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.HDel(ctx, s.linksKey(), l.Key())
		pipe.SRem(ctx, s.refKey(l.From()), l.Key())
		pipe.SRem(ctx, s.refKey(l.To()), l.Key())
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("removing link %s: %w", l.Key(), err)
	}
	return removed.Val() > 0, nil
}

func (s *Store) Find(ctx context.Context, ref link.Ref) ([]link.Link, error) {
	keys, err := s.rdb.SMembers(ctx, s.refKey(ref)).Result()
	if err != nil {
		return nil, fmt.Errorf("finding links for %s.%s=%s: %w", ref.Entity, ref.Key, ref.Value, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	slices.Sort(keys)

	vals, err := s.rdb.HMGet(ctx, s.linksKey(), keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("loading links: %w", err)
	}

	out := make([]link.Link, 0, len(vals))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			// Index entry without a stored link; a concurrent Remove won the race.
			continue
		}
		var l link.Link
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			return nil, fmt.Errorf("decoding link %s: %w", keys[i], err)
		}
		out = append(out, l)
	}
	slices.SortFunc(out, func(a, b link.Link) int { return strings.Compare(a.Key(), b.Key()) })
	return out, nil
}

func (s *Store) Name() string { return "redis" }

// HealthCheck pings the Redis server.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}
