package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/ojonugwa/igatrans/internal/config"
	"github.com/ojonugwa/igatrans/internal/corpus"
	"github.com/ojonugwa/igatrans/internal/database"
	"github.com/ojonugwa/igatrans/internal/history"
	"github.com/ojonugwa/igatrans/internal/server"
	"github.com/ojonugwa/igatrans/internal/tagger"
	"github.com/ojonugwa/igatrans/internal/translation"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	entries, err := corpus.LoadFile(cfg.Corpus.File)
	if err != nil {
		return fmt.Errorf("corpus.LoadFile(%s) > %w", cfg.Corpus.File, err)
	}
	lexicon := translation.NewLexicon(corpus.Pairs(entries))
	logger.Info("dictionary loaded",
		"file", cfg.Corpus.File,
		"entries", lexicon.Size(translation.DirectionForward))

	deps := server.Dependencies{
		Lexicon: lexicon,
		Entries: entries,
		Logger:  logger,
	}

	if client := newTaggerClient(cfg); client != nil {
		defer func() {
			_ = client.Close()
		}()
		deps.Tagger = client
	}

	// History endpoints stay disabled when the database is unreachable.
	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Warn("database unavailable, history and favorites disabled", "error", err)
	} else {
		defer func() {
			_ = db.Close()
		}()
		deps.Translations = history.NewDBTranslationRepository(db)
		deps.Favorites = history.NewDBFavoriteRepository(db)
	}

	handler := server.New(deps).Handler()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr)
	return http.ListenAndServe(addr, corsMiddleware(h2c.NewHandler(handler, &http2.Server{})))
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(os.Getenv("IGATRANS_CONFIG"))
	if err != nil {
		return nil, fmt.Errorf("config.Load() > %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cfg.Validate() > %w", err)
	}
	return cfg, nil
}

func newTaggerClient(cfg *config.Config) *tagger.HTTPClient {
	if cfg.Tagger.BaseURL == "" {
		return nil
	}
	return tagger.NewHTTPClient(cfg.Tagger.BaseURL, cfg.Tagger.APIKey,
		uint(cfg.Tagger.MaxAttempts))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
