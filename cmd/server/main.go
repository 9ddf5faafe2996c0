// @title Scoreline Predictor API
// @version 1.0
// @description Poisson scoreline forecasts for football matches.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "github.com/scoreline/predictor/docs"
	"github.com/scoreline/predictor/internal/app"
	"github.com/scoreline/predictor/internal/config"
	"github.com/scoreline/predictor/internal/handlers"
	"github.com/scoreline/predictor/internal/telegram"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// .env is optional; real environment variables take precedence
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

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	table, err := app.LoadRatings(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load ratings: %w", err)
	}

	rdb, err := app.ConnectRedis(ctx, cfg)
	if err != nil {
		sugar.Warnw("Prediction cache disabled", "error", err)
	} else if rdb != nil {
		defer rdb.Close()
		sugar.Infow("Prediction cache enabled", "ttl", cfg.CacheTTL)
	}

	svc := app.NewPredictionService(cfg, table, rdb, logger)

	hcfg := handlers.Config{
		Prediction:      svc,
		Teams:           table,
		Logger:          logger,
		DefaultMaxGoals: cfg.MaxGoals,
		MaxGoalsLimit:   cfg.MaxGoalsLimit,
		AllowedOrigins:  cfg.AllowedOrigins,
		RequestTimeout:  cfg.RequestTimeout,
	}
	if rdb != nil {
		hcfg.Redis = rdb
	}
	h := handlers.New(hcfg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var bot *telegram.Bot
	if cfg.TelegramEnabled() {
		api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
		if err != nil {
			return fmt.Errorf("failed to start telegram bot: %w", err)
		}
		sugar.Infow("Telegram bot authorized", "username", api.Self.UserName)

		bot = telegram.New(telegram.Config{
			API:         api,
			Predictor:   svc,
			Teams:       table,
			MaxGoals:    cfg.MaxGoals,
			WorkerCount: cfg.BotWorkerCount,
			QueueSize:   cfg.BotQueueSize,
			Logger:      logger,
		})
	} else {
		sugar.Info("TELEGRAM_TOKEN not set, chat bot disabled")
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("HTTP server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		sugar.Info("Shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	})

	if bot != nil {
		g.Go(func() error { return bot.Run(gctx) })
	}

	return g.Wait()
}
