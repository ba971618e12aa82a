package store

import (
	"context"

	"github.com/hazyhaar/scores/dbopen"
)

// ScoreRecord is one (game, player, score) row.
type ScoreRecord struct {
	Game       string `json:"game"`
	PlayerName string `json:"player_name"`
	Score      uint64 `json:"score"`
}

// Insert appends one record. Fields are bound as parameters and are not
// validated.
func (s *Store) Insert(ctx context.Context, r ScoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storageErr("insert", ErrClosed)
	}
	if _, err := dbopen.Exec(ctx, s.DB, insertScoreSQL, r.Game, int64(r.Score), r.PlayerName); err != nil {
		return storageErr("insert", err)
	}
	return nil
}

// QueryByGame returns the records of game ordered by score, highest first.
// AllGames selects every record. Ties come back in storage order. Rows that
// fail to decode are skipped. The result is never nil.
func (s *Store) QueryByGame(ctx context.Context, game string) ([]ScoreRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, storageErr("query", ErrClosed)
	}

	rows, err := s.DB.QueryContext(ctx, selectByGameSQL, game, game)
	if err != nil {
		return nil, storageErr("query", err)
	}
	defer rows.Close()

	records := []ScoreRecord{}
	for rows.Next() {
		var (
			r     ScoreRecord
			score int64
		)
		if err := rows.Scan(&r.Game, &score, &r.PlayerName); err != nil {
			continue
		}
		// Negative scores wrap around.
		r.Score = uint64(score)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("query", err)
	}
	return records, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, storageErr("count", ErrClosed)
	}
	var n int
	if err := s.DB.QueryRowContext(ctx, countScoresSQL).Scan(&n); err != nil {
		return 0, storageErr("count", err)
	}
	return n, nil
}
