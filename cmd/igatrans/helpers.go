package main

import (
	"fmt"

	"github.com/ojonugwa/igatrans/internal/config"
	"github.com/ojonugwa/igatrans/internal/corpus"
	"github.com/ojonugwa/igatrans/internal/translation"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// loadLexicon loads the dictionary file from the configuration and builds
// the in-memory lexicon plus the raw entries.
func loadLexicon() (*translation.Lexicon, []corpus.Entry, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	entries, err := corpus.LoadFile(cfg.Corpus.File)
	if err != nil {
		return nil, nil, fmt.Errorf("corpus.LoadFile(%s) > %w", cfg.Corpus.File, err)
	}
	return translation.NewLexicon(corpus.Pairs(entries)), entries, nil
}
