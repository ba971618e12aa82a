package leaderboard

import (
	"context"
	"fmt"
)

// DefaultSeed is the fixed record set written at startup.
var DefaultSeed = []ScoreRecord{
	{Game: "snake", PlayerName: "austin", Score: 10},
	{Game: "snake", PlayerName: "alec", Score: 19},
	{Game: "snake", PlayerName: "keith", Score: 15},
	{Game: "snake", PlayerName: "karen", Score: 16},
	{Game: "breakout", PlayerName: "austin", Score: 35},
	{Game: "breakout", PlayerName: "alec", Score: 30},
	{Game: "breakout", PlayerName: "keith", Score: 32},
	{Game: "breakout", PlayerName: "karen", Score: 33},
}

// Seed writes records according to mode and returns how many were inserted.
// SeedOnce skips a non-empty table, SeedAlways inserts unconditionally,
// SeedOff does nothing. Must run before the service takes traffic.
func (s *Service) Seed(ctx context.Context, records []ScoreRecord, mode string) (int, error) {
	switch mode {
	case SeedOff:
		return 0, nil
	case SeedOnce:
		n, err := s.store.Count(ctx)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			s.logger.Info("leaderboard: seed skipped, table not empty", "records", n)
			return 0, nil
		}
	case SeedAlways:
	default:
		return 0, fmt.Errorf("leaderboard: unknown seed mode %q", mode)
	}

	for i, r := range records {
		if err := s.Insert(ctx, r); err != nil {
			return i, fmt.Errorf("leaderboard: seed record %d: %w", i, err)
		}
	}
	s.logger.Info("leaderboard: seeded", "records", len(records), "mode", mode)
	return len(records), nil
}
