package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/scorebridge/scorebridge/internal/parser"
)

// registerResources declares the cached-result resources plus a static
// server description. Resource keys are the derived cache keys, so a host
// can re-read a result it has already seen without another upstream fetch.
func (s *Server) registerResources() {
	s.mcp.AddResource(
		mcp.NewResource(
			"server://info",
			"Scorebridge server info",
			mcp.WithMIMEType("text/plain"),
		),
		s.readServerInfo,
	)

	cached := []struct {
		kind parser.Kind
		name string
	}{
		{parser.KindSchedule, "Cached season schedules"},
		{parser.KindTransactions, "Cached daily transactions"},
		{parser.KindGameStats, "Cached game statistics"},
		{parser.KindLeagueStats, "Cached league hierarchies"},
		{parser.KindTeamStats, "Cached team rosters"},
		{parser.KindPlayerStats, "Cached player profiles"},
	}
	for _, r := range cached {
		kind := r.kind
		s.mcp.AddResourceTemplate(
			mcp.NewResourceTemplate(
				fmt.Sprintf("sports://%s/{key}", kind),
				r.name,
				mcp.WithTemplateDescription(fmt.Sprintf("Previously parsed %s results, addressed by their content-derived cache key.", kind)),
				mcp.WithTemplateMIMEType("application/json"),
			),
			func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return s.readCached(kind, req)
			},
		)
	}
}

// readCached serves a cache entry by key. An absent key yields an empty
// object rather than an error.
func (s *Server) readCached(kind parser.Kind, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	key := strings.TrimPrefix(req.Params.URI, fmt.Sprintf("sports://%s/", kind))

	text := "{}"
	if v, ok := s.store.Get(string(kind), key); ok {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("serialize cached %s: %w", kind, err)
		}
		text = string(out)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     text,
		},
	}, nil
}

func (s *Server) readServerInfo(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	info := `Scorebridge MCP server

Sports statistics from Sportradar, exposed as MCP tools.

Available tools:
- update_api_config: change language, access level, or payload format
- get_schedule: season schedule, filterable by week
- get_daily_transactions: roster moves for one day
- get_game_stats: full statistics for one game
- get_league_info: league hierarchy (conferences, divisions, teams)
- get_team_roster: full roster for a team
- get_player_stats: profile and statistics for a player
- get_address: reverse-geocode stadium coordinates

Parsed results are cached under sports://<kind>/<key> resources.`

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "server://info",
			MIMEType: "text/plain",
			Text:     info,
		},
	}, nil
}
