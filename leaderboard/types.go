package leaderboard

import (
	"errors"

	"github.com/hazyhaar/scores/leaderboard/internal/store"
)

// Re-exported types from internal/store for use by cmd/ and external callers.
type (
	ScoreRecord  = store.ScoreRecord
	StorageError = store.StorageError
)

// AllGames is the game filter that selects every record.
const AllGames = store.AllGames

// IsStorageError reports whether err carries a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
