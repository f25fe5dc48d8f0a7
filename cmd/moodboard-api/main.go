// Command moodboard-api runs the MoodBoard AI backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/moodboard-ai/api/internal/auth"
	"github.com/moodboard-ai/api/internal/config"
	"github.com/moodboard-ai/api/internal/db"
	"github.com/moodboard-ai/api/internal/huggingface"
	"github.com/moodboard-ai/api/internal/jamendo"
	"github.com/moodboard-ai/api/internal/mood"
	"github.com/moodboard-ai/api/internal/playlist"
	"github.com/moodboard-ai/api/internal/summary"
	"github.com/moodboard-ai/api/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings := config.Load()

	logger, err := newLogger(settings.Debug)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	// Mood analyzer: classifier ports are optional; without a Hugging Face
	// key the analyzer runs entirely on its lexical fallbacks.
	analyzerOpts := []mood.Option{mood.WithLogger(logger)}
	if hfCfg, err := huggingface.LoadConfig(); err == nil {
		hf := huggingface.NewClient(hfCfg)
		analyzerOpts = append(analyzerOpts,
			mood.WithSentimentScorer(huggingface.NewSentimentAdapter(hf)),
			mood.WithEmotionScorer(huggingface.NewEmotionAdapter(hf)),
			mood.WithParser(huggingface.NewParserAdapter(hf)),
		)
	} else if errors.Is(err, huggingface.ErrMissingAPIKey) {
		logger.Warn("HUGGINGFACE_API_KEY not set, using fallback analysis")
	}
	analyzer := mood.NewAnalyzer(analyzerOpts...)

	// Weekly summaries share the Hugging Face credential.
	var completer summary.Completer
	if hfCfg, err := huggingface.LoadConfig(); err == nil {
		completer = huggingface.NewClient(hfCfg)
	}
	summaries := summary.NewService(completer, logger)

	// Playlist catalog: without a Jamendo credential all fetches return the
	// error shape without network I/O.
	var catalog playlist.Catalog
	if jamCfg, err := jamendo.LoadConfig(); err == nil {
		catalog = jamendo.NewClient(jamCfg)
	} else if errors.Is(err, jamendo.ErrMissingClientID) {
		logger.Warn("JAMENDO_CLIENT_ID not set, music features will be limited")
	}
	playlists := playlist.NewService(catalog, logger)

	// Persistence and auth.
	ctx := context.Background()
	database, err := db.New(ctx, settings.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	if err := database.InitSchema(ctx); err != nil {
		return err
	}

	authService := auth.NewService(settings.SecretKey, auth.DefaultTokenTTL)

	server, err := web.NewServer(web.ServerConfig{
		Addr:           settings.Addr,
		AllowedOrigins: settings.AllowedOrigins,
		Analyzer:       analyzer,
		Playlists:      playlists,
		Summaries:      summaries,
		Auth:           authService,
		Database:       database,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
