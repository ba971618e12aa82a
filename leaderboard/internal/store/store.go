// Package store provides the SQLite persistence layer for the leaderboard.
package store

import (
	"context"
	"database/sql"
	"sync"

	"github.com/hazyhaar/scores/dbopen"
)

// AllGames is the filter value that selects records of every game.
const AllGames = "*"

// Store is the leaderboard database handle. It is the sole owner of the
// connection; every operation holds mu for its whole duration, so at most
// one store call runs at a time.
type Store struct {
	// DB is exposed for administrative access and tests. Calls made on it
	// directly bypass the store lock.
	DB *sql.DB

	mu     sync.Mutex
	closed bool
}

// Open opens (or creates) the database file at path with a single
// connection and initialises the schema. The returned store is Open.
func Open(ctx context.Context, path string, opts ...dbopen.Option) (*Store, error) {
	allOpts := append([]dbopen.Option{
		dbopen.WithMkdirAll(),
		dbopen.WithMaxOpenConns(1),
	}, opts...)

	db, err := dbopen.Open(path, allOpts...)
	if err != nil {
		return nil, storageErr("open", err)
	}
	s := New(db)
	if err := s.InitSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an already opened database. The caller is responsible for
// calling InitSchema.
func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// InitSchema creates the scores table if it does not exist. Safe to call on
// every start.
func (s *Store) InitSchema(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storageErr("init schema", ErrClosed)
	}
	if _, err := s.DB.ExecContext(ctx, Schema); err != nil {
		return storageErr("init schema", err)
	}
	return nil
}

// Close releases the connection. Further calls fail with ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.DB.Close()
}
