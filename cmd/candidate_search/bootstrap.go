package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/epicstalent-sudo/level-up-backend/config"
	"github.com/epicstalent-sudo/level-up-backend/internal/indexing"
	"github.com/epicstalent-sudo/level-up-backend/internal/logger"
	"github.com/epicstalent-sudo/level-up-backend/internal/search"
	"github.com/epicstalent-sudo/level-up-backend/store"
)

// newLogger applies the --log-level and --log-format overrides on top of cfg.
func newLogger(cfg *config.ServerConfig, w io.Writer) (*slog.Logger, error) {
	level, format := cfg.LogLevel, cfg.LogFormat
	if logLevel != "" {
		level = logLevel
	}
	if logFormat != "" {
		format = logFormat
	}
	return logger.New(level, format, w)
}

// loadSearchService reads the dataset, builds the text index and wires the search service.
// Any failure here is fatal for the process.
func loadSearchService(dataFile string, log *slog.Logger) (*search.Service, error) {
	start := time.Now()

	candidates, err := store.LoadFile(dataFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	invIndex, err := indexing.Build(candidates, config.DefaultIndexSettings())
	if err != nil {
		return nil, fmt.Errorf("failed to build text index: %w", err)
	}

	searcher, err := search.NewTextSearcher(invIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to create text searcher: %w", err)
	}

	svc, err := search.NewService(candidates, searcher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	log.Info("candidate index ready",
		"data_file", dataFile,
		"candidates", candidates.Len(),
		"terms", len(invIndex.Terms()),
		"took_ms", time.Since(start).Milliseconds())
	return svc, nil
}
