package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/store/redislink"
	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/platform/config"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// backends holds the opened persistence backends selected by config.
type backends struct {
	db    *sqlite.DB
	redis *redis.Client

	links    ports.LinkStore
	recon    ports.ReconciliationLog
	checkers []ports.HealthChecker
}

func openBackends(ctx context.Context, cfg *config.Config) (*backends, error) {
	b := &backends{}

	switch cfg.Store.Backend {
	case "sqlite":
		db, err := sqlite.Open(ctx, cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		b.db = db
		b.recon = sqlite.NewReconciliationLog(db)
		b.checkers = append(b.checkers, db)
	default:
		b.recon = memory.NewReconciliationLog()
	}

	switch cfg.Links.Backend {
	case "redis":
		b.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store := redislink.New(b.redis)
		if err := store.HealthCheck(ctx); err != nil {
			_ = b.Close()
			return nil, err
		}
		b.links = store
		b.checkers = append(b.checkers, store)
	case "sqlite":
		b.links = sqlite.NewLinkStore(b.db)
	default:
		b.links = memory.NewLinkStore()
	}

	return b, nil
}

// provide registers one entity store per catalog kind plus the link store
// and reconciliation log.
func (b *backends) provide(injector *do.RootScope) {
	provideStore[catalog.Brand](injector, b.db)
	provideStore[catalog.Tag](injector, b.db)
	provideStore[catalog.Collection](injector, b.db)
	provideStore[catalog.CollectionTab](injector, b.db)
	provideStore[catalog.CollectionItem](injector, b.db)
	provideStore[catalog.Menu](injector, b.db)
	provideStore[catalog.MenuItem](injector, b.db)

	do.ProvideValue(injector, b.links)
	do.ProvideValue(injector, b.recon)
}

func provideStore[T any, P catalog.RecordPtr[T]](injector *do.RootScope, db *sqlite.DB) {
	do.Provide(injector, func(_ do.Injector) (ports.EntityStore[T], error) {
		if db == nil {
			return memory.NewStore[T, P](), nil
		}
		return sqlite.NewStore[T, P](db), nil
	})
}

func (b *backends) Close() error {
	var errs []error
	if b.redis != nil {
		if err := b.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing redis: %w", err))
		}
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing sqlite: %w", err))
		}
	}
	return errors.Join(errs...)
}
