// Package telegram serves match predictions over a Telegram bot.
package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/scoreline/predictor/internal/logic"
	"github.com/scoreline/predictor/internal/models"
	"github.com/scoreline/predictor/internal/render"
	"github.com/scoreline/predictor/internal/worker"
)

const (
	defaultUpdateTimeout = 60
	// Telegram rejects messages longer than 4096 characters
	maxMessageLen = 4000

	welcomeText = "Hi! Send `/predict TeamA vs TeamB`, e.g. `/predict Paris_SG vs Real_Madrid`.\n" +
		"Names with spaces work too; /teams lists the rated teams."
	usageText        = "Usage: /predict TeamA vs TeamB\n/teams lists the rated teams."
	invalidText      = "Invalid format. Example: /predict Paris_SG vs Real_Madrid"
	unknownText      = "Unknown command. Use /help to see available commands."
	notUnderstoodTxt = "I don't understand. Send `/predict TeamA vs TeamB`."
	failedText       = "Sorry, the prediction for %s vs %s failed."
)

// BotAPI is the subset of tgbotapi.BotAPI used by the bot
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// TeamLister lists the teams known to the rating table
type TeamLister interface {
	Teams() []string
}

// Config configures the bot
type Config struct {
	API           BotAPI
	Predictor     logic.PredictionService
	Teams         TeamLister
	MaxGoals      int
	UpdateTimeout int
	WorkerCount   int
	QueueSize     int
	Logger        *zap.Logger
}

// Bot reads updates from Telegram and replies with predictions. Message
// handling runs on a worker pool so a slow reply never stalls the update loop.
type Bot struct {
	api           BotAPI
	predictor     logic.PredictionService
	teams         TeamLister
	maxGoals      int
	updateTimeout int
	pool          *worker.Pool
	logger        *zap.SugaredLogger
}

// New creates a bot
func New(cfg Config) *Bot {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.UpdateTimeout <= 0 {
		cfg.UpdateTimeout = defaultUpdateTimeout
	}

	b := &Bot{
		api:           cfg.API,
		predictor:     cfg.Predictor,
		teams:         cfg.Teams,
		maxGoals:      cfg.MaxGoals,
		updateTimeout: cfg.UpdateTimeout,
		logger:        cfg.Logger.Sugar(),
	}
	b.pool = worker.NewPool(worker.PoolConfig{
		WorkerCount: cfg.WorkerCount,
		QueueSize:   cfg.QueueSize,
		Handler:     b.handle,
		Logger:      cfg.Logger,
	})
	return b
}

// Run polls for updates until ctx is canceled, then drains queued messages.
func (b *Bot) Run(ctx context.Context) error {
	b.pool.Start(ctx)
	defer b.pool.Stop()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.updateTimeout
	updates := b.api.GetUpdatesChan(u)

	b.logger.Infow("Telegram bot polling for updates", "timeout", b.updateTimeout)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("Telegram bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || strings.TrimSpace(update.Message.Text) == "" {
				continue
			}

			job := worker.Job{
				ChatID:    update.Message.Chat.ID,
				MessageID: update.Message.MessageID,
				Text:      update.Message.Text,
			}
			if update.Message.From != nil {
				job.UserID = update.Message.From.ID
			}
			if !b.pool.Enqueue(job) {
				b.logger.Warnw("Dropped message under load", "chat", job.ChatID)
			}
		}
	}
}

func (b *Bot) handle(ctx context.Context, job worker.Job) error {
	reply := b.Respond(ctx, job.Text)

	msg := tgbotapi.NewMessage(job.ChatID, reply)
	msg.ReplyToMessageID = job.MessageID
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send reply to chat %d: %w", job.ChatID, err)
	}
	return nil
}

// Respond computes the reply text for an incoming message.
func (b *Bot) Respond(ctx context.Context, text string) string {
	cmd := ParseCommand(text)

	switch cmd.Kind {
	case CommandStart:
		return welcomeText
	case CommandHelp:
		return usageText
	case CommandTeams:
		return b.teamList()
	case CommandPredict:
		if !cmd.Valid {
			return invalidText
		}
		res, err := b.predict(ctx, cmd)
		if err != nil {
			return fmt.Sprintf(failedText, render.DisplayName(cmd.Home), render.DisplayName(cmd.Away))
		}
		return render.Full(res)
	case CommandMatchup:
		res, err := b.predict(ctx, cmd)
		if err != nil {
			return fmt.Sprintf(failedText, render.DisplayName(cmd.Home), render.DisplayName(cmd.Away))
		}
		return render.Compact(res)
	case CommandUnknown:
		return unknownText
	default:
		return notUnderstoodTxt
	}
}

func (b *Bot) predict(ctx context.Context, cmd Command) (*models.PredictionResult, error) {
	res, err := b.predictor.Predict(ctx, models.PredictRequest{
		Home:     cmd.Home,
		Away:     cmd.Away,
		MaxGoals: b.maxGoals,
	})
	if err != nil {
		b.logger.Errorw("Prediction failed", "home", cmd.Home, "away", cmd.Away, "error", err)
		return nil, err
	}
	return res, nil
}

func (b *Bot) teamList() string {
	if b.teams == nil {
		return "No teams are rated yet."
	}
	names := b.teams.Teams()
	if len(names) == 0 {
		return "No teams are rated yet."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Rated teams (%d):\n", len(names))
	for i, name := range names {
		line := render.DisplayName(name) + "\n"
		if sb.Len()+len(line) > maxMessageLen {
			fmt.Fprintf(&sb, "... and %d more", len(names)-i)
			break
		}
		sb.WriteString(line)
	}
	return strings.TrimRight(sb.String(), "\n")
}
