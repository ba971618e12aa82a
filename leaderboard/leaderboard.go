// Package leaderboard serves per-game player scores.
//
// Scores live in a single SQLite table owned by the internal store. The
// service exposes them read-only over HTTP (GET /games/, GET /games/{name})
// and, optionally, as an MCP tool.
//
// Usage:
//
//	svc, err := leaderboard.New(ctx, cfg, logger)
//	defer svc.Close()
//	svc.Seed(ctx, leaderboard.DefaultSeed, cfg.Seed)
//	http.ListenAndServe(cfg.Addr, svc.Handler())
package leaderboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/hazyhaar/scores/leaderboard/internal/store"
)

// Service is the leaderboard orchestrator.
type Service struct {
	store   *store.Store
	logger  *slog.Logger
	config  *Config
	metrics *metrics
}

// New opens the score store at cfg.DBPath and initialises the schema.
// No seed data is written; call Seed.
func New(ctx context.Context, cfg *Config, logger *slog.Logger) (*Service, error) {
	cfg.defaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return newService(s, cfg, logger), nil
}

func newService(s *store.Store, cfg *Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:   s,
		logger:  logger,
		config:  cfg,
		metrics: newMetrics(),
	}
}

// Close closes the store.
func (s *Service) Close() error {
	return s.store.Close()
}

// Scores returns the records of game ranked by score, highest first.
// AllGames returns every record. A missing game yields an empty slice.
func (s *Service) Scores(ctx context.Context, game string) ([]ScoreRecord, error) {
	start := time.Now()
	recs, err := s.store.QueryByGame(ctx, game)
	s.metrics.observeQuery(ctx, time.Since(start), len(recs), err)
	return recs, err
}

// Insert appends one record. Administrative use only: no transport exposes
// writes.
func (s *Service) Insert(ctx context.Context, r ScoreRecord) error {
	err := s.store.Insert(ctx, r)
	s.metrics.observeInsert(err)
	return err
}
