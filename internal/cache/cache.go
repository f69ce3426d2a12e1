// Package cache provides the in-memory result cache for parsed upstream
// payloads. Each resource kind owns its own table; keys are derived from
// payload content by the parser, so byte-identical upstream responses
// collapse to a single entry no matter which request produced them.
//
// There is no eviction and no TTL. Entries live for the process lifetime;
// unbounded growth is an accepted tradeoff given the low request volume of
// a single MCP host.
package cache

import "sync"

// Store is a thread-safe set of per-kind key/value tables.
type Store struct {
	mu      sync.RWMutex
	tables  map[string]map[string]any
	enabled bool
}

// New creates a store. Pass enabled=false for a no-op store (every Get
// misses, Put is discarded), which forces re-parsing on every request.
func New(enabled bool) *Store {
	return &Store{
		tables:  make(map[string]map[string]any),
		enabled: enabled,
	}
}

// Get retrieves a cached value from the kind's table.
func (s *Store) Get(kind, key string) (any, bool) {
	if !s.enabled {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	table, ok := s.tables[kind]
	if !ok {
		return nil, false
	}
	v, ok := table[key]
	return v, ok
}

// Put stores a value in the kind's table.
func (s *Store) Put(kind, key string, value any) {
	if !s.enabled {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	table, ok := s.tables[kind]
	if !ok {
		table = make(map[string]any)
		s.tables[kind] = table
	}
	table[key] = value
}

// Stats returns per-kind entry counts for the health surface.
func (s *Store) Stats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	perKind := make(map[string]int, len(s.tables))
	for kind, table := range s.tables {
		perKind[kind] = len(table)
		total += len(table)
	}
	return map[string]any{
		"enabled":    s.enabled,
		"total_keys": total,
		"kinds":      perKind,
	}
}
