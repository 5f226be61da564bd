package main

import (
	"context"
	"fmt"

	"contactbook/internal/contacts/store"
	"contactbook/internal/contacts/store/boltdb"
	"contactbook/internal/contacts/store/file"
	pgstore "contactbook/internal/contacts/store/postgres"
	redisstore "contactbook/internal/contacts/store/redis"
	"contactbook/internal/platform/config"
	"contactbook/internal/platform/postgres"
	platformredis "contactbook/internal/platform/redis"
)

func noopClose() error { return nil }

// openStore builds the configured snapshot backend. The returned func releases
// whatever the backend holds open.
func openStore(ctx context.Context, cfg config.Config) (store.Snapshot, func() error, error) {
	switch cfg.Store {
	case config.StoreFile:
		return file.New(cfg.File), noopClose, nil

	case config.StoreBolt:
		s, err := boltdb.Open(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case config.StorePostgres:
		pool, err := postgres.New(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		if pool == nil {
			return nil, nil, fmt.Errorf("postgres store needs a database URL")
		}
		s := pgstore.New(pool)
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return s, func() error { pool.Close(); return nil }, nil

	case config.StoreRedis:
		client, err := platformredis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		if client == nil {
			return nil, nil, fmt.Errorf("redis store needs a URL")
		}
		return redisstore.New(client, cfg.Redis.Key), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
