// Package parser reshapes raw Sportradar payloads into the reduced records
// served to MCP clients, caching each result under a key derived from the
// payload content. Dispatch is a closed switch over (kind, sport) pairs so
// an unimplemented combination is an explicit error, not a missing map entry.
package parser

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/scorebridge/scorebridge/internal/cache"
	"github.com/scorebridge/scorebridge/internal/sports"
)

// Kind is a resource kind: one category of upstream data with its own
// normalizer and cache table.
type Kind string

const (
	KindSchedule     Kind = "schedule"
	KindTransactions Kind = "transactions"
	KindGameStats    Kind = "game_stats"
	KindLeagueStats  Kind = "league_stats"
	KindTeamStats    Kind = "team_stats"
	KindPlayerStats  Kind = "player_stats"
)

// NoTransactions is returned instead of a TransactionLog when the upstream
// feed lists no player transactions. It is a valid terminal value, not an
// error, and is never cached.
const NoTransactions = "No transactions done on this day."

// Parser dispatches payloads to per-sport normalizers with read-through
// caching.
type Parser struct {
	store  *cache.Store
	logger *slog.Logger

	// incremented on every normalizer run; cache hits leave it untouched
	normalizeCalls int
}

// New creates a Parser backed by the given cache store.
func New(store *cache.Store, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{store: store, logger: logger}
}

// Parse normalizes a raw payload for the given kind and sport, returning the
// cached record when an identical payload has been seen before. The returned
// value is one of the model types in this package, or the NoTransactions
// sentinel string.
func (p *Parser) Parse(kind Kind, sportID string, raw []byte) (any, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", kind, err)
	}

	key, err := deriveKey(kind, sportID, payload)
	if err != nil {
		return nil, err
	}

	if v, ok := p.store.Get(string(kind), key); ok {
		p.logger.Debug("cache hit", "kind", kind, "key", key)
		return v, nil
	}

	v, cacheable, err := p.normalize(kind, sportID, key, payload, raw)
	if err != nil {
		return nil, err
	}
	if cacheable {
		p.store.Put(string(kind), key, v)
	}
	return v, nil
}

// deriveKey extracts the kind-specific cache key from payload content.
// Keys never depend on request parameters: two requests that return
// byte-identical upstream content collapse to one cache entry.
func deriveKey(kind Kind, sportID string, payload map[string]any) (string, error) {
	switch kind {
	case KindSchedule:
		season, err := objField(payload, "season", "season object")
		if err != nil {
			return "", err
		}
		return strField(season, "id", "season id")

	case KindTransactions:
		league, err := objField(payload, "league", "league object")
		if err != nil {
			return "", err
		}
		leagueID, err := strField(league, "id", "league id")
		if err != nil {
			return "", err
		}
		start, err := strField(payload, "start_time", "transaction window start time")
		if err != nil {
			return "", err
		}
		end, err := strField(payload, "end_time", "transaction window end time")
		if err != nil {
			return "", err
		}
		// exact concatenation, no separator
		return leagueID + start + end, nil

	case KindGameStats, KindTeamStats, KindPlayerStats:
		return strField(payload, "id", "record id")

	case KindLeagueStats:
		league, err := objField(payload, "league", "league object")
		if err != nil {
			return "", err
		}
		return strField(league, "id", "league id")

	default:
		return "", fmt.Errorf("unknown resource kind %q", kind)
	}
}

// normalize runs the per-sport normalizer for the kind. The second return
// value reports whether the result should be cached (the transactions
// sentinel is not).
func (p *Parser) normalize(kind Kind, sportID, key string, payload map[string]any, raw []byte) (any, bool, error) {
	p.normalizeCalls++

	switch kind {
	case KindSchedule:
		switch sportID {
		case sports.NFL:
			s, err := normalizeFootballSchedule(payload)
			return s, err == nil, err
		}

	case KindTransactions:
		switch sportID {
		case sports.NFL:
			v, err := normalizeFootballTransactions(key, payload)
			if err != nil {
				return nil, false, err
			}
			_, isSentinel := v.(string)
			return v, !isSentinel, nil
		}

	case KindGameStats, KindLeagueStats, KindTeamStats, KindPlayerStats:
		switch sportID {
		case sports.NFL:
			// identity passthrough: key extraction and caching only
			return &PassthroughRecord{ID: key, Payload: json.RawMessage(raw)}, true, nil
		}

	default:
		return nil, false, fmt.Errorf("unknown resource kind %q", kind)
	}

	return nil, false, fmt.Errorf("no %s normalizer implemented for sport %q (supported sports: %s)",
		kind, sportID, sports.SupportedList())
}

// --------------------------------------------------------------------------
// Payload field helpers
// --------------------------------------------------------------------------
//
// These surface a missing field as a structural error naming the field's
// logical role, instead of a raw type-assertion panic.

func objField(payload map[string]any, name, role string) (map[string]any, error) {
	v, ok := payload[name].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("payload missing %s", role)
	}
	return v, nil
}

func strField(payload map[string]any, name, role string) (string, error) {
	v, ok := payload[name].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("payload missing %s", role)
	}
	return v, nil
}

// optStr returns the string value of a field, or "" when absent. Used for
// fields the normalized shape carries but whose absence is tolerated.
func optStr(payload map[string]any, name string) string {
	v, _ := payload[name].(string)
	return v
}

// optObj returns a nested object, or an empty map when absent.
func optObj(payload map[string]any, name string) map[string]any {
	v, ok := payload[name].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return v
}

// optInt returns a pointer to the field's integer value, or nil when the
// field is absent or not numeric.
func optInt(payload map[string]any, name string) *int {
	f, ok := payload[name].(float64)
	if !ok {
		return nil
	}
	n := int(f)
	return &n
}

// optFloat returns the field's numeric value, or 0 when absent.
func optFloat(payload map[string]any, name string) float64 {
	f, _ := payload[name].(float64)
	return f
}
