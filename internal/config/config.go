package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port           int
	Env            string
	RequestTimeout time.Duration

	// CORS
	AllowedOrigins []string

	// Rating source
	RatingsPath string
	PostgresURL string

	// Cache
	RedisURL string
	CacheTTL time.Duration

	// Model
	MaxGoals      int
	MaxGoalsLimit int
	BaseGoals     float64
	HomeAdvantage float64

	// Telegram bot
	TelegramToken  string
	BotWorkerCount int
	BotQueueSize   int
}

// Load loads configuration from environment variables.
// It returns an error if a model constant is out of range.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnvInt("PORT", 8080),
		Env:            getEnv("ENV", "development"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),

		RatingsPath: getEnv("RATINGS_PATH", "teams.json"),
		PostgresURL: os.Getenv("POSTGRES_URL"),

		RedisURL: os.Getenv("REDIS_URL"),
		CacheTTL: getEnvDuration("CACHE_TTL", time.Hour),

		MaxGoals:      getEnvInt("MAX_GOALS", 6),
		MaxGoalsLimit: getEnvInt("MAX_GOALS_LIMIT", 15),
		BaseGoals:     getEnvFloat("BASE_GOALS", 1.35),
		HomeAdvantage: getEnvFloat("HOME_ADVANTAGE", 1.12),

		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		BotWorkerCount: getEnvInt("BOT_WORKER_COUNT", 4),
		BotQueueSize:   getEnvInt("BOT_QUEUE_SIZE", 256),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the model constants.
func (c *Config) Validate() error {
	if c.BaseGoals <= 0 {
		return fmt.Errorf("BASE_GOALS must be positive, got %v", c.BaseGoals)
	}
	if c.HomeAdvantage <= 0 {
		return fmt.Errorf("HOME_ADVANTAGE must be positive, got %v", c.HomeAdvantage)
	}
	if c.MaxGoalsLimit < 0 {
		return fmt.Errorf("MAX_GOALS_LIMIT must be non-negative, got %d", c.MaxGoalsLimit)
	}
	if c.MaxGoals < 0 || c.MaxGoals > c.MaxGoalsLimit {
		return fmt.Errorf("MAX_GOALS must be between 0 and %d, got %d", c.MaxGoalsLimit, c.MaxGoals)
	}
	return nil
}

// TelegramEnabled reports whether a usable bot token is configured.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && !strings.Contains(c.TelegramToken, "paste-your-bot-token")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
