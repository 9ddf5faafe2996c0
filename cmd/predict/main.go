// Command predict prints a one-off match prediction.
//
//	predict -home Paris_SG -away Real_Madrid
//	predict -json Paris SG vs Real Madrid
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/scoreline/predictor/internal/app"
	"github.com/scoreline/predictor/internal/config"
	"github.com/scoreline/predictor/internal/models"
	"github.com/scoreline/predictor/internal/render"
	"github.com/scoreline/predictor/internal/telegram"
)

var errUsage = errors.New("usage: predict -home TEAM -away TEAM [-max-goals N] [-ratings FILE] [-json] [-matrix]\n       predict [flags] TEAM vs TEAM")

func main() {
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	home := fs.String("home", "", "home team")
	away := fs.String("away", "", "away team")
	maxGoals := fs.Int("max-goals", cfg.MaxGoals, "largest goal count per side")
	ratingsPath := fs.String("ratings", cfg.RatingsPath, "rating file (ignored when POSTGRES_URL is set)")
	asJSON := fs.Bool("json", false, "print the full result as JSON")
	showMatrix := fs.Bool("matrix", false, "print the score matrix")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n%v", errUsage, err)
	}

	if *home == "" && *away == "" && fs.NArg() > 0 {
		h, a, ok := telegram.ParseMatchup(strings.Join(fs.Args(), " "))
		if !ok {
			return errUsage
		}
		*home, *away = h, a
	}
	if strings.TrimSpace(*home) == "" || strings.TrimSpace(*away) == "" {
		return errUsage
	}
	cfg.RatingsPath = *ratingsPath

	ctx := context.Background()
	table, err := app.LoadRatings(ctx, cfg, zap.NewNop())
	if err != nil {
		return err
	}

	// One-shot runs skip the cache
	svc := app.NewPredictionService(cfg, table, nil, zap.NewNop())
	res, err := svc.Predict(ctx, models.PredictRequest{Home: *home, Away: *away, MaxGoals: *maxGoals})
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintln(stdout, render.Full(res))
	if *showMatrix {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, render.Matrix(res))
	}
	return nil
}
