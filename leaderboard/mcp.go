package leaderboard

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/scores/kit"
)

// RegisterMCP registers the read-only leaderboard tools on an MCP server.
func (s *Service) RegisterMCP(srv *mcp.Server) {
	s.registerScoresTool(srv)
}

// ServeMCP runs an MCP server over stdin/stdout until ctx is done.
func (s *Service) ServeMCP(ctx context.Context, impl *mcp.Implementation) error {
	srv := mcp.NewServer(impl, nil)
	s.RegisterMCP(srv)
	return srv.Run(ctx, &mcp.StdioTransport{})
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

type scoresRequest struct {
	Game string `json:"game,omitempty"`
}

func (s *Service) registerScoresTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "leaderboard_scores",
		Description: "List player scores ranked highest first. Give a game name to filter; omit it for all games.",
		InputSchema: inputSchema(map[string]any{
			"game": map[string]any{"type": "string", "description": "Exact, case-sensitive game name (e.g. snake). Omit or \"*\" for all games."},
		}, nil),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		game := req.(*scoresRequest).Game
		if game == "" {
			game = AllGames
		}
		recs, err := s.Scores(ctx, game)
		if IsStorageError(err) {
			return nil, errors.New(errStorageUnavailable)
		}
		return recs, err
	}

	kit.RegisterMCPTool(srv, tool,
		kit.Chain(kit.Logging(s.logger, tool.Name))(endpoint),
		kit.DecodeArgs(func() any { return &scoresRequest{} }),
	)
}
