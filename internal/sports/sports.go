// Package sports holds the static registry of sports supported by the
// Sportradar bridge. The table is read-only for the process lifetime;
// adding a sport means adding a row here plus normalizers in internal/parser.
package sports

import (
	"sort"
	"strings"
)

// Sport IDs as they appear in Sportradar URL paths.
const (
	NFL = "nfl"
)

// Descriptor describes one sport's Sportradar API surface.
type Descriptor struct {
	ID                 string
	SupportedLanguages []string
	APIVersion         string
	// Official leagues carry an extra "official" path segment in their
	// base URL.
	Official bool
}

// API versions are pinned per sport; there is no endpoint to discover them.
var registry = map[string]Descriptor{
	NFL: {
		ID:                 NFL,
		SupportedLanguages: []string{"br", "da", "de", "en", "es", "fi", "fr", "it", "ja", "nl", "no", "se", "tr"},
		APIVersion:         "v7",
		Official:           true,
	},
}

// Lookup returns the descriptor for a sport ID. Callers turn a miss into a
// descriptive error naming the sport, never a nil dereference.
func Lookup(id string) (Descriptor, bool) {
	d, ok := registry[strings.ToLower(id)]
	return d, ok
}

// SupportedList returns the comma-joined sport IDs, for tool descriptions
// and error messages.
func SupportedList() string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return strings.Join(ids, ", ")
}

// SupportsLanguage reports whether any registered sport supports the given
// language code.
func SupportsLanguage(lang string) bool {
	for _, d := range registry {
		for _, l := range d.SupportedLanguages {
			if l == lang {
				return true
			}
		}
	}
	return false
}
