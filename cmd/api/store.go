package main

import (
	"context"
	"fmt"

	"github.com/abhishek622/entrystore/internal/cache"
	"github.com/abhishek622/entrystore/internal/config"
	"github.com/abhishek622/entrystore/internal/database"
	"github.com/abhishek622/entrystore/internal/repository"
	"go.uber.org/zap"
)

// openEntryStore opens the configured backend and returns the store together
// with the function that releases everything it acquired.
func openEntryStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.EntryStore, func(), error) {
	var (
		repo    *repository.Repository
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.DB.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() {
			if err := db.Close(); err != nil {
				log.Warn("close sqlite", zap.Error(err))
			}
		})
		repo = repository.NewSQLiteRepository(db)
	case config.DriverPostgres:
		pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxOpenConns, cfg.DB.MaxConnLifetime)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, pool.Close)
		repo = repository.NewPostgresRepository(pool)
	default:
		return nil, nil, fmt.Errorf("unsupported driver %q", cfg.DB.Driver)
	}
	log.Info("entry store opened", zap.String("driver", cfg.DB.Driver))

	store := repo.Entry
	if cfg.CacheEnabled() {
		client := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := cache.Ping(ctx, client); err != nil {
			log.Warn("entry cache unreachable, reads fall through to the store", zap.Error(err))
		}
		closers = append(closers, func() { _ = client.Close() })
		store = repository.NewCachedEntryRepository(store, cache.NewEntryListCache(client, cfg.Redis.TTL), log)
		log.Info("entry cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.TTL))
	}

	return store, closeAll, nil
}
