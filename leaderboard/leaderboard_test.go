package leaderboard

import (
	"context"
	"io"
	"log/slog"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/hazyhaar/scores/dbopen"
	"github.com/hazyhaar/scores/leaderboard/internal/store"
)

func testService(t *testing.T) *Service {
	t.Helper()
	st := store.New(dbopen.OpenMemory(t))
	if err := st.InitSchema(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	cfg := &Config{}
	cfg.defaults()
	return newService(st, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func seeded(t *testing.T) *Service {
	t.Helper()
	s := testService(t)
	if _, err := s.Seed(context.Background(), DefaultSeed, SeedAlways); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func TestSeed_Modes(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	steps := []struct {
		mode      string
		inserted  int
		wantTotal int
	}{
		{SeedOff, 0, 0},
		{SeedOnce, 8, 8},
		{SeedOnce, 0, 8},
		{SeedAlways, 8, 16},
	}
	for _, st := range steps {
		n, err := s.Seed(ctx, DefaultSeed, st.mode)
		if err != nil {
			t.Fatalf("seed %s: %v", st.mode, err)
		}
		if n != st.inserted {
			t.Errorf("seed %s: inserted %d, want %d", st.mode, n, st.inserted)
		}
		total, err := s.store.Count(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if total != st.wantTotal {
			t.Errorf("after seed %s: %d records, want %d", st.mode, total, st.wantTotal)
		}
	}
}

func TestSeed_UnknownMode(t *testing.T) {
	s := testService(t)
	if _, err := s.Seed(context.Background(), DefaultSeed, "sometimes"); err == nil {
		t.Fatal("expected error for unknown seed mode")
	}
}

func TestSeed_ClosedStore(t *testing.T) {
	s := testService(t)
	s.Close()
	_, err := s.Seed(context.Background(), DefaultSeed, SeedAlways)
	if !IsStorageError(err) {
		t.Fatalf("want storage error, got %v", err)
	}
}

func TestScores_AllGamesCount(t *testing.T) {
	s := seeded(t)
	recs, err := s.Scores(context.Background(), AllGames)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != len(DefaultSeed) {
		t.Fatalf("got %d records, want %d", len(recs), len(DefaultSeed))
	}
}

func TestNew_File(t *testing.T) {
	cfg := &Config{DBPath: t.TempDir() + "/scores.db"}
	s, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer s.Close()
	if cfg.Addr != "127.0.0.1:3000" {
		t.Errorf("defaults not applied: addr %q", cfg.Addr)
	}
	if n, err := s.Seed(context.Background(), DefaultSeed, cfg.Seed); err != nil || n != 8 {
		t.Fatalf("seed: n=%d err=%v", n, err)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(context.Background(), &Config{DBPath: ":memory:", Seed: "twice"}, nil)
	if err == nil {
		t.Fatal("expected config error")
	}
}
