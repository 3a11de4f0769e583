package app

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/room_booking_bot/internal/config"
	"github.com/Freeeeeet/room_booking_bot/internal/storage"
	"github.com/Freeeeeet/room_booking_bot/internal/storage/memory"
	"github.com/Freeeeeet/room_booking_bot/internal/storage/postgres"
	redisstore "github.com/Freeeeeet/room_booking_bot/internal/storage/redis"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// OpenStore открывает хранилище, выбранное в STORAGE_DRIVER.
// Возвращаемая функция закрывает соединения.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Store, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage, data will be lost on restart")
		return memory.NewStore(), func() {}, nil

	case config.StoragePostgres:
		pool, err := OpenPostgres(ctx, cfg.GetDBDSN())
		if err != nil {
			return nil, nil, err
		}

		migrator, err := NewMigrator(pool, logger)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		defer migrator.Close()

		if err := migrator.Run(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}

		logger.Info("Connected to PostgreSQL")
		return postgres.NewStore(pool), pool.Close, nil

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}

		logger.Info("Connected to Redis",
			zap.String("addr", cfg.RedisAddr),
			zap.String("prefix", cfg.RedisPrefix),
		)
		closeFn := func() {
			if err := client.Close(); err != nil {
				logger.Warn("Failed to close redis client", zap.Error(err))
			}
		}
		return redisstore.NewStore(client, cfg.RedisPrefix), closeFn, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// OpenPostgres создаёт пул соединений и проверяет доступность базы
func OpenPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}
