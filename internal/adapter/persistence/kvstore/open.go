package kvstore

import (
	"context"
	"fmt"

	"agencia_maker/internal/infrastructure/config"
	"agencia_maker/internal/infrastructure/database"
	"agencia_maker/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Open connects the backend selected by cfg.StorageBackend. The returned
// close function releases the underlying connection and is never nil.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (interfaces.IKeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageBackend {
	case config.StorageMemory:
		logger.Warn("[kvstore] using in-memory storage; data is lost on restart")
		return NewMemoryStore(), noop, nil

	case config.StorageBolt:
		db, err := database.OpenBolt(cfg.BoltPath)
		if err != nil {
			return nil, noop, err
		}
		store, err := NewBoltStore(db)
		if err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		logger.Info("[kvstore] bolt storage ready", zap.String("path", cfg.BoltPath))
		return store, db.Close, nil

	case config.StorageRedis:
		client, err := database.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("[kvstore] redis storage ready", zap.String("addr", cfg.RedisAddr))
		return NewRedisStore(client), client.Close, nil

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDBEndpoint)
		if err != nil {
			return nil, noop, err
		}
		store := NewDynamoStore(ddb, cfg.KVTable)
		if err := store.EnsureTable(ctx); err != nil {
			return nil, noop, err
		}
		logger.Info("[kvstore] dynamodb storage ready", zap.String("table", cfg.KVTable))
		return store, noop, nil

	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		store := NewPostgresStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		logger.Info("[kvstore] postgres storage ready")
		return store, func() error { pool.Close(); return nil }, nil
	}

	return nil, noop, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
}
