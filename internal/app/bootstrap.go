// Package app wires configuration into the long-lived dependencies shared by
// the server and bot binaries.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/scoreline/predictor/internal/config"
	"github.com/scoreline/predictor/internal/logic"
	"github.com/scoreline/predictor/internal/ratings"
)

const connectTimeout = 5 * time.Second

// NewLogger returns a JSON production logger for ENV=production and a
// console development logger otherwise.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// LoadRatings reads the rating table from Postgres when POSTGRES_URL is set
// and from RATINGS_PATH otherwise.
func LoadRatings(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ratings.Table, error) {
	log := logger.Sugar()

	if cfg.PostgresURL != "" {
		ctx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()

		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		defer pool.Close()

		table, err := ratings.LoadPostgres(ctx, pool)
		if err != nil {
			return nil, err
		}
		log.Infow("Loaded ratings from Postgres", "teams", len(table.Teams()), "fingerprint", table.Fingerprint())
		return table, nil
	}

	table, err := ratings.LoadFile(cfg.RatingsPath)
	if err != nil {
		return nil, err
	}
	log.Infow("Loaded ratings from file", "path", cfg.RatingsPath, "teams", len(table.Teams()), "fingerprint", table.Fingerprint())
	return table, nil
}

// ConnectRedis opens and pings the cache. It returns nil without error when
// REDIS_URL is unset.
func ConnectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewPredictionService builds the engine for table and wraps it with the
// cache. rdb may be nil.
func NewPredictionService(cfg *config.Config, table *ratings.Table, rdb *redis.Client, logger *zap.Logger) logic.PredictionService {
	engine := logic.NewEngine(table, logic.Params{
		BaseGoals:     cfg.BaseGoals,
		HomeAdvantage: cfg.HomeAdvantage,
	})

	cacheCfg := logic.CacheConfig{
		TTL:         cfg.CacheTTL,
		Fingerprint: table.Fingerprint(),
		Logger:      logger,
	}
	if rdb != nil {
		cacheCfg.Redis = rdb
	}
	return logic.NewCachedPredictionService(engine, cacheCfg)
}
