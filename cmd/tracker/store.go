package main

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dnd-tracker/internal/config"
	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-tracker/internal/repositories/store"
)

type storeOpener func(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (store.Store, func(), error)

// openStore returns the store selected by cfg and a func that releases it.
// An unreachable backend is reported as CodeUnavailable.
func openStore(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (store.Store, func(), error) {
	switch cfg.Store {
	case config.StoreMemory:
		log.Warn("Using in-memory storage, changes will not outlive this command")
		return store.NewInMemory(), func() {}, nil

	case config.StoreRedis:
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to parse REDIS_URL")
		}

		client := redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to connect to redis").
				WithMeta("addr", opts.Addr)
		}

		log.WithField("addr", opts.Addr).Debug("Using Redis for persistence")
		return store.NewRedis(client), func() {
			if err := client.Close(); err != nil {
				log.WithError(err).Warn("Failed to close Redis client")
			}
		}, nil

	default:
		db, err := store.NewSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}

		log.WithField("path", cfg.DBPath).Debug("Using SQLite for persistence")
		return db, func() {
			if err := db.Close(); err != nil {
				log.WithError(err).Warn("Failed to close SQLite database")
			}
		}, nil
	}
}
