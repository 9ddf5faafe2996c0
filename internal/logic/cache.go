package logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/scoreline/predictor/internal/models"
)

const defaultCacheTTL = time.Hour

// CacheConfig configures the prediction cache
type CacheConfig struct {
	// Redis may be nil, in which case results are never cached but concurrent
	// identical requests are still collapsed.
	Redis RedisClient
	TTL   time.Duration
	// Fingerprint identifies the rating table so entries computed from a
	// different table are never served.
	Fingerprint string
	Logger      *zap.Logger
}

type cachedPredictionService struct {
	next        PredictionService
	redis       RedisClient
	ttl         time.Duration
	fingerprint string
	group       singleflight.Group
	logger      *zap.SugaredLogger
}

// NewCachedPredictionService wraps a PredictionService with a Redis cache.
// Cache failures are logged and fall through to the wrapped service.
func NewCachedPredictionService(next PredictionService, cfg CacheConfig) PredictionService {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultCacheTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &cachedPredictionService{
		next:        next,
		redis:       cfg.Redis,
		ttl:         cfg.TTL,
		fingerprint: cfg.Fingerprint,
		logger:      cfg.Logger.Sugar(),
	}
}

func (s *cachedPredictionService) Predict(ctx context.Context, req models.PredictRequest) (*models.PredictionResult, error) {
	start := time.Now()
	defer func() { predictionDuration.Observe(time.Since(start).Seconds()) }()

	if req.MaxGoals < 0 {
		return s.next.Predict(ctx, req)
	}

	key := s.cacheKey(req)
	if res, ok := s.get(ctx, key); ok {
		return res, nil
	}

	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		res, err := s.next.Predict(ctx, req)
		if err != nil {
			return nil, err
		}
		// The write outlives the caller that started the flight
		s.set(context.WithoutCancel(ctx), key, res)
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debugw("Shared in-flight prediction", "key", key)
	}
	return v.(*models.PredictionResult), nil
}

func (s *cachedPredictionService) cacheKey(req models.PredictRequest) string {
	return fmt.Sprintf("prediction:%s:%d:%s:%s", s.fingerprint, req.MaxGoals, strconv.Quote(req.Home), strconv.Quote(req.Away))
}

func (s *cachedPredictionService) get(ctx context.Context, key string) (*models.PredictionResult, bool) {
	if s.redis == nil {
		return nil, false
	}

	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			cacheLookups.WithLabelValues("miss").Inc()
		} else {
			cacheLookups.WithLabelValues("error").Inc()
			s.logger.Warnw("Prediction cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var res models.PredictionResult
	if err := json.Unmarshal(data, &res); err != nil {
		cacheLookups.WithLabelValues("error").Inc()
		s.logger.Warnw("Discarding corrupt cache entry", "key", key, "error", err)
		return nil, false
	}

	cacheLookups.WithLabelValues("hit").Inc()
	return &res, true
}

func (s *cachedPredictionService) set(ctx context.Context, key string, res *models.PredictionResult) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(res)
	if err != nil {
		s.logger.Errorw("Failed to marshal prediction for cache", "key", key, "error", err)
		return
	}
	if err := s.redis.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.Warnw("Prediction cache write failed", "key", key, "error", err)
	}
}
