package sportradar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testSettings() Settings {
	return Settings{Format: "json", AccessLevel: "trial", Language: "en"}
}

func TestBaseURLOfficialLeague(t *testing.T) {
	c := NewClient("", "key", testSettings(), 0, time.Second, nil)

	got, err := c.BaseURL("nfl")
	if err != nil {
		t.Fatalf("BaseURL: %v", err)
	}
	want := "https://api.sportradar.com/nfl/official/trial/v7/en"
	if got != want {
		t.Errorf("BaseURL = %q, want %q", got, want)
	}
}

func TestBaseURLUnknownSport(t *testing.T) {
	c := NewClient("", "key", testSettings(), 0, time.Second, nil)

	_, err := c.BaseURL("cricket")
	if err == nil {
		t.Fatal("expected error for unknown sport")
	}
	if !strings.Contains(err.Error(), "cricket") {
		t.Errorf("error %q should name the sport", err)
	}
}

func TestUpdatePartialFields(t *testing.T) {
	c := NewClient("", "key", testSettings(), 0, time.Second, nil)

	snap, err := c.Update("fr", "", "")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if snap.Language != "fr" {
		t.Errorf("Language = %q, want fr", snap.Language)
	}
	// omitted fields keep prior values
	if snap.AccessLevel != "trial" || snap.Format != "json" {
		t.Errorf("omitted fields changed: %+v", snap.Settings)
	}
	if !strings.Contains(snap.BaseURL, "/fr") {
		t.Errorf("BaseURL %q should reflect the new language", snap.BaseURL)
	}

	base, err := c.BaseURL("nfl")
	if err != nil {
		t.Fatalf("BaseURL: %v", err)
	}
	if !strings.HasSuffix(base, "/fr") {
		t.Errorf("BaseURL %q should end with /fr", base)
	}
}

func TestUpdateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name                          string
		language, accessLevel, format string
	}{
		{"unsupported language", "xx", "", ""},
		{"bad access level", "", "staging", ""},
		{"bad format", "", "", "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient("", "key", testSettings(), 0, time.Second, nil)
			if _, err := c.Update(tt.language, tt.accessLevel, tt.format); err == nil {
				t.Fatal("expected validation error")
			}
			// a rejected update leaves settings untouched
			if got := c.Settings(); got != testSettings() {
				t.Errorf("settings changed after rejected update: %+v", got)
			}
		})
	}
}

func TestFetch(t *testing.T) {
	var gotPath, gotKey, gotAccept string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("api_key")
		gotAccept = r.Header.Get("accept")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "secret", testSettings(), 0, time.Second, nil)
	body, err := c.Fetch(context.Background(), "nfl", "league/hierarchy.json")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if string(body) != `{"ok": true}` {
		t.Errorf("body = %s", body)
	}
	if gotPath != "/nfl/official/trial/v7/en/league/hierarchy.json" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "secret" {
		t.Errorf("api_key = %q, want secret", gotKey)
	}
	if gotAccept != "application/json" {
		t.Errorf("accept = %q", gotAccept)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("invalid api key"))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "bad", testSettings(), 0, time.Second, nil)
	_, err := c.Fetch(context.Background(), "nfl", "league/hierarchy.json")
	if err == nil {
		t.Fatal("expected error for 403")
	}
	if !strings.Contains(err.Error(), "403") {
		t.Errorf("error %q should embed the status code", err)
	}
	if !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("error %q should embed the response body", err)
	}
}

func TestFetchUnknownSport(t *testing.T) {
	c := NewClient("", "key", testSettings(), 0, time.Second, nil)
	_, err := c.Fetch(context.Background(), "cricket", "whatever.json")
	if err == nil {
		t.Fatal("expected error for unknown sport")
	}
	if !strings.Contains(err.Error(), "cricket") {
		t.Errorf("error %q should name the sport", err)
	}
}

func TestFetchSpacing(t *testing.T) {
	var calls []time.Time
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, time.Now())
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	interval := 50 * time.Millisecond
	c := NewClient(ts.URL, "key", testSettings(), interval, time.Second, nil)

	for i := 0; i < 3; i++ {
		if _, err := c.Fetch(context.Background(), "nfl", "league/hierarchy.json"); err != nil {
			t.Fatalf("Fetch %d: %v", i, err)
		}
	}

	if len(calls) != 3 {
		t.Fatalf("got %d calls, want 3", len(calls))
	}
	for i := 1; i < len(calls); i++ {
		if gap := calls[i].Sub(calls[i-1]); gap < interval-5*time.Millisecond {
			t.Errorf("call %d followed after %v, want at least %v", i, gap, interval)
		}
	}
}
