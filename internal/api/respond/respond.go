// Package respond provides shared JSON response utilities for the HTTP
// transport's handlers.
package respond

import (
	"encoding/json"
	"net/http"
)

// WriteJSONObject marshals a Go value to JSON and writes it.
func WriteJSONObject(w http.ResponseWriter, status int, obj any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(obj)
}
