package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/scorebridge/scorebridge/internal/parser"
	"github.com/scorebridge/scorebridge/internal/sports"
)

// registerTools declares the callable tool surface.
func (s *Server) registerTools() {
	sportDesc := fmt.Sprintf("Sport to query. Supported values: %s", sports.SupportedList())

	s.mcp.AddTool(
		mcp.NewTool("update_api_config",
			mcp.WithDescription("Update Sportradar API settings (language, trial or production access level, payload format). Omitted fields keep their current values."),
			mcp.WithString("language", mcp.Description("Language code for upstream responses (e.g. en, fr, de)")),
			mcp.WithString("access_level", mcp.Description("API access level: trial or production")),
			mcp.WithString("format", mcp.Description("Payload format: json or xml")),
		),
		s.handleUpdateConfig,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_schedule",
			mcp.WithDescription("Get the season schedule for a sport. NFL: weeks 1 (September) - 18 (January), plus 5 playoff weeks. Week 0 returns all weeks."),
			mcp.WithNumber("week", mcp.Description("Week to filter to; 0 returns the whole season")),
			mcp.WithString("season_type", mcp.Description("Season type: PRE, REG, or PST. Default REG")),
			mcp.WithNumber("year", mcp.Description("Season year (e.g. 2024); 0 uses the current season")),
			mcp.WithString("sport", mcp.Description(sportDesc)),
		),
		s.handleGetSchedule,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_daily_transactions",
			mcp.WithDescription("Get roster transactions (signings, releases, trades) across a league for one day."),
			mcp.WithNumber("year", mcp.Required(), mcp.Description("Year of the transactions")),
			mcp.WithNumber("month", mcp.Required(), mcp.Description("Month of the transactions")),
			mcp.WithNumber("day", mcp.Required(), mcp.Description("Day of the transactions")),
			mcp.WithString("sport", mcp.Description(sportDesc)),
		),
		s.handleGetDailyTransactions,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_game_stats",
			mcp.WithDescription("Get full statistics for a single game by its ID."),
			mcp.WithString("game_id", mcp.Required(), mcp.Description("Game ID from a schedule")),
			mcp.WithString("sport", mcp.Description(sportDesc)),
		),
		s.handleGetGameStats,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_league_info",
			mcp.WithDescription("Get the league hierarchy (conferences, divisions, teams) for a sport."),
			mcp.WithString("sport", mcp.Description(sportDesc)),
		),
		s.handleGetLeagueInfo,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_team_roster",
			mcp.WithDescription("Get the full roster for a team by its ID."),
			mcp.WithString("team_id", mcp.Required(), mcp.Description("Team ID from the league hierarchy")),
			mcp.WithString("sport", mcp.Description(sportDesc)),
		),
		s.handleGetTeamRoster,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_player_stats",
			mcp.WithDescription("Get the profile and statistics for a player by their ID."),
			mcp.WithString("player_id", mcp.Required(), mcp.Description("Player ID from a roster")),
			mcp.WithString("sport", mcp.Description(sportDesc)),
		),
		s.handleGetPlayerStats,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_address",
			mcp.WithDescription("Resolve latitude/longitude coordinates (e.g. a stadium location from a schedule) to a street address."),
			mcp.WithNumber("lat", mcp.Required(), mcp.Description("Latitude")),
			mcp.WithNumber("lon", mcp.Required(), mcp.Description("Longitude")),
		),
		s.handleGetAddress,
	)
}

// --------------------------------------------------------------------------
// Tool handlers
// --------------------------------------------------------------------------

func (s *Server) handleUpdateConfig(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.Params.Arguments
	snap, err := s.client.Update(
		getStr(args, "language", ""),
		getStr(args, "access_level", ""),
		getStr(args, "format", ""),
	)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"Updated configs:\n  Format: %s\n  Language: %s\n  Access level: %s\n  Base URL (updated): %s",
		snap.Format, snap.Language, snap.AccessLevel, snap.BaseURL,
	)), nil
}

func (s *Server) handleGetSchedule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.Params.Arguments
	week := getInt(args, "week", 0)
	year := getInt(args, "year", 0)
	seasonType := strings.ToUpper(getStr(args, "season_type", "REG"))
	sport := sportArg(args)

	switch seasonType {
	case "PRE", "REG", "PST":
	default:
		return mcp.NewToolResultError(fmt.Sprintf("season type %q is not valid (want PRE, REG, or PST)", seasonType)), nil
	}

	subPath := fmt.Sprintf("games/current_season/schedule.%s", s.client.Format())
	if year > 0 {
		subPath = fmt.Sprintf("games/%d/%s/schedule.%s", year, seasonType, s.client.Format())
	}

	v, errResult := s.fetchAndParse(ctx, parser.KindSchedule, sport, subPath)
	if errResult != nil {
		return errResult, nil
	}

	sched, ok := v.(*parser.Schedule)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unexpected schedule result type %T", v)), nil
	}
	return marshalResult(filterWeeks(sched, week))
}

func (s *Server) handleGetDailyTransactions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.Params.Arguments
	year := getInt(args, "year", 0)
	month := getInt(args, "month", 0)
	day := getInt(args, "day", 0)
	sport := sportArg(args)

	subPath := fmt.Sprintf("league/%d/%d/%d/transactions.%s", year, month, day, s.client.Format())
	v, errResult := s.fetchAndParse(ctx, parser.KindTransactions, sport, subPath)
	if errResult != nil {
		return errResult, nil
	}
	if msg, ok := v.(string); ok {
		// "no transactions" sentinel: a valid terminal value
		return mcp.NewToolResultText(msg), nil
	}
	return marshalResult(v)
}

func (s *Server) handleGetGameStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.Params.Arguments
	gameID := getStr(args, "game_id", "")
	if gameID == "" {
		return mcp.NewToolResultError("game_id is required"), nil
	}
	subPath := fmt.Sprintf("games/%s/statistics.%s", gameID, s.client.Format())
	return s.passthroughTool(ctx, parser.KindGameStats, sportArg(args), subPath)
}

func (s *Server) handleGetLeagueInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	subPath := fmt.Sprintf("league/hierarchy.%s", s.client.Format())
	return s.passthroughTool(ctx, parser.KindLeagueStats, sportArg(req.Params.Arguments), subPath)
}

func (s *Server) handleGetTeamRoster(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.Params.Arguments
	teamID := getStr(args, "team_id", "")
	if teamID == "" {
		return mcp.NewToolResultError("team_id is required"), nil
	}
	subPath := fmt.Sprintf("teams/%s/full_roster.%s", teamID, s.client.Format())
	return s.passthroughTool(ctx, parser.KindTeamStats, sportArg(args), subPath)
}

func (s *Server) handleGetPlayerStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.Params.Arguments
	playerID := getStr(args, "player_id", "")
	if playerID == "" {
		return mcp.NewToolResultError("player_id is required"), nil
	}
	subPath := fmt.Sprintf("players/%s/profile.%s", playerID, s.client.Format())
	return s.passthroughTool(ctx, parser.KindPlayerStats, sportArg(args), subPath)
}

func (s *Server) handleGetAddress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.Params.Arguments
	lat := getFloat(args, "lat", 0)
	lon := getFloat(args, "lon", 0)

	address, err := s.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		s.logger.Error("reverse geocode failed", "lat", lat, "lon", lon, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(address), nil
}

// --------------------------------------------------------------------------
// Shared plumbing
// --------------------------------------------------------------------------

// fetchAndParse runs the fetch -> parse pipeline. On failure it returns a
// non-nil error result for the caller to hand back as-is.
func (s *Server) fetchAndParse(ctx context.Context, kind parser.Kind, sport, subPath string) (any, *mcp.CallToolResult) {
	raw, err := s.client.Fetch(ctx, sport, subPath)
	if err != nil {
		s.logger.Error("upstream fetch failed", "kind", kind, "sport", sport, "error", err)
		return nil, mcp.NewToolResultError(err.Error())
	}

	v, err := s.parser.Parse(kind, sport, raw)
	if err != nil {
		s.logger.Error("parse failed", "kind", kind, "sport", sport, "error", err)
		return nil, mcp.NewToolResultError(err.Error())
	}
	return v, nil
}

// passthroughTool handles the stats kinds, which are cached but not
// reshaped.
func (s *Server) passthroughTool(ctx context.Context, kind parser.Kind, sport, subPath string) (*mcp.CallToolResult, error) {
	v, errResult := s.fetchAndParse(ctx, kind, sport, subPath)
	if errResult != nil {
		return errResult, nil
	}
	return marshalResult(v)
}

// filterWeeks returns a copy of the schedule narrowed to one week, or the
// schedule itself when week is 0. The cached value is never mutated.
func filterWeeks(sched *parser.Schedule, week int) *parser.Schedule {
	if week <= 0 {
		return sched
	}
	out := &parser.Schedule{Season: parser.Season{
		ID:    sched.Season.ID,
		Year:  sched.Season.Year,
		Weeks: []parser.Week{},
	}}
	for _, w := range sched.Season.Weeks {
		if w.Number == week {
			out.Season.Weeks = append(out.Season.Weeks, w)
		}
	}
	return out
}

func marshalResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("serialize result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

// --------------------------------------------------------------------------
// Argument helpers
// --------------------------------------------------------------------------

func toMap(args any) map[string]any {
	if m, ok := args.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func getStr(args any, key, fallback string) string {
	if v, ok := toMap(args)[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(args any, key string, fallback int) int {
	if v, ok := toMap(args)[key].(float64); ok {
		return int(v)
	}
	return fallback
}

func getFloat(args any, key string, fallback float64) float64 {
	if v, ok := toMap(args)[key].(float64); ok {
		return v
	}
	return fallback
}

func sportArg(args any) string {
	return strings.ToLower(getStr(args, "sport", sports.NFL))
}
