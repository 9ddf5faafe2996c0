package handlers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/scoreline/predictor/internal/logic"
)

// MaxBodySize limits the size of request bodies to 64KB
const MaxBodySize = 64 << 10

// TeamSource exposes the loaded rating table
type TeamSource interface {
	Teams() []string
	Len() int
	Fingerprint() string
}

// Pinger checks the cache connection
type Pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type Config struct {
	Prediction logic.PredictionService
	Teams      TeamSource
	// Redis is optional; nil means no cache is configured
	Redis  Pinger
	Logger *zap.Logger

	DefaultMaxGoals int
	MaxGoalsLimit   int
	AllowedOrigins  []string
	RequestTimeout  time.Duration
}

type Handler struct {
	prediction      logic.PredictionService
	teams           TeamSource
	redis           Pinger
	logger          *zap.SugaredLogger
	validator       *validator.Validate
	defaultMaxGoals int
	maxGoalsLimit   int
	allowedOrigins  []string
	requestTimeout  time.Duration
}

func New(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.DefaultMaxGoals < 0 {
		cfg.DefaultMaxGoals = logic.DefaultMaxGoals
	}
	return &Handler{
		prediction:      cfg.Prediction,
		teams:           cfg.Teams,
		redis:           cfg.Redis,
		logger:          cfg.Logger.Sugar(),
		validator:       validator.New(),
		defaultMaxGoals: cfg.DefaultMaxGoals,
		maxGoalsLimit:   cfg.MaxGoalsLimit,
		allowedOrigins:  cfg.AllowedOrigins,
		requestTimeout:  cfg.RequestTimeout,
	}
}
