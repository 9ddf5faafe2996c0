package logic

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/scoreline/predictor/internal/models"
)

// PredictionService produces match predictions
type PredictionService interface {
	Predict(ctx context.Context, req models.PredictRequest) (*models.PredictionResult, error)
}

// RedisClient defines the subset of the Redis client used for caching
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}
