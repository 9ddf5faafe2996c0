package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/scoreline/predictor/internal/app"
	"github.com/scoreline/predictor/internal/config"
	"github.com/scoreline/predictor/internal/telegram"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := app.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if !cfg.TelegramEnabled() {
		logger.Fatal("TELEGRAM_TOKEN not set. Add it to the environment or .env before running the bot.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	table, err := app.LoadRatings(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load ratings", zap.Error(err))
	}

	rdb, err := app.ConnectRedis(ctx, cfg)
	if err != nil {
		logger.Warn("Prediction cache disabled", zap.Error(err))
	} else if rdb != nil {
		defer rdb.Close()
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to authorize bot", zap.Error(err))
	}
	logger.Info("Telegram bot authorized", zap.String("username", api.Self.UserName))

	bot := telegram.New(telegram.Config{
		API:         api,
		Predictor:   app.NewPredictionService(cfg, table, rdb, logger),
		Teams:       table,
		MaxGoals:    cfg.MaxGoals,
		WorkerCount: cfg.BotWorkerCount,
		QueueSize:   cfg.BotQueueSize,
		Logger:      logger,
	})

	if err := bot.Run(ctx); err != nil {
		logger.Fatal("Bot exited with error", zap.Error(err))
	}
}
