// Command leaderboard serves ranked game scores over HTTP.
//
// Usage:
//
//	leaderboard                           # 127.0.0.1:3000, ./db.lite
//	leaderboard -config leaderboard.yaml  # YAML config, LEADERBOARD_* env overrides
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	_ "modernc.org/sqlite"

	"github.com/hazyhaar/scores/leaderboard"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "path to leaderboard.yaml config file")
	flag.Parse()

	cfg, err := leaderboard.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Logs go to stderr: stdout carries MCP frames when stdio is enabled.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, cfg); err != nil {
		logger.Error("leaderboard: fatal", "error", err)
		os.Exit(1)
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg *leaderboard.Config) error {
	svc, err := leaderboard.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer svc.Close()

	// Seeding completes before the listener exists, so it never races reads.
	if _, err := svc.Seed(ctx, leaderboard.DefaultSeed, cfg.Seed); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	if cfg.MCPTransport == "stdio" {
		go func() {
			impl := &mcp.Implementation{Name: "leaderboard", Version: version}
			if err := svc.ServeMCP(ctx, impl); err != nil && ctx.Err() == nil {
				logger.Error("leaderboard: mcp stdio", "error", err)
			}
		}()
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	srv := &http.Server{
		Handler:           svc.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	logger.Info("leaderboard: listening", "addr", ln.Addr().String(), "db", cfg.DBPath)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("leaderboard: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
