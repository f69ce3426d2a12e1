package parser

import "encoding/json"

// Schedule is the normalized season schedule. Everything outside this field
// subset is deliberately dropped during normalization.
type Schedule struct {
	Season Season `json:"season"`
}

// Season holds one season's weeks.
type Season struct {
	ID    string `json:"id"`
	Year  int    `json:"year"`
	Weeks []Week `json:"weeks"`
}

// Week holds one week's games. Weeks with no games are dropped entirely.
type Week struct {
	ID     string `json:"id"`
	Number int    `json:"num"`
	Games  []Game `json:"games"`
}

// Game is a single scheduled game. Scores are nil until the game has been
// played.
type Game struct {
	ID       string      `json:"id"`
	Date     string      `json:"date"`
	Location Coordinates `json:"location"`
	Stadium  string      `json:"stadium"`
	HomeTeam string      `json:"home_team"`
	AwayTeam string      `json:"away_team"`
	// Scores come through the scoring block and are absent pre-game.
	ScoreHome *int `json:"score_home"`
	ScoreAway *int `json:"score_away"`
}

// Coordinates are the venue's latitude/longitude, usable directly with the
// get_address tool.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TransactionLog is the normalized daily transaction feed for a league.
// Its ID doubles as the cache key: league id + start time + end time,
// concatenated with no separator.
type TransactionLog struct {
	ID         string               `json:"id"`
	LeagueName string               `json:"league_name"`
	StartTime  string               `json:"start_time"`
	EndTime    string               `json:"end_time"`
	Players    []PlayerTransactions `json:"players"`
}

// PlayerTransactions groups one player's transactions for the day.
type PlayerTransactions struct {
	Name         string        `json:"name"`
	Position     string        `json:"position"`
	Transactions []Transaction `json:"transactions"`
}

// Transaction is a single roster move.
type Transaction struct {
	Description   string `json:"description"`
	EffectiveDate string `json:"effective_date"`
	StatusBefore  string `json:"status_before"`
	ReceivingTeam string `json:"receiving_team"`
}

// PassthroughRecord wraps a stats payload that is cached but not reshaped.
// ID is extracted from the payload for cache keying; Payload is the raw
// upstream bytes, unmodified.
type PassthroughRecord struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}
