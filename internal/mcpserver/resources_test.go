package mcpserver

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/scorebridge/scorebridge/internal/parser"
)

func readRequest(uri string) mcp.ReadResourceRequest {
	var req mcp.ReadResourceRequest
	req.Params.URI = uri
	return req
}

func TestReadCachedHit(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	s.store.Put(string(parser.KindSchedule), "2024-REG", &parser.Schedule{
		Season: parser.Season{ID: "2024-REG", Year: 2024},
	})

	contents, err := s.readCached(parser.KindSchedule, readRequest("sports://schedule/2024-REG"))
	if err != nil {
		t.Fatalf("readCached: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(contents))
	}

	text := contents[0].(mcp.TextResourceContents)
	if text.MIMEType != "application/json" {
		t.Errorf("MIMEType = %q", text.MIMEType)
	}
	if !strings.Contains(text.Text, "2024-REG") {
		t.Errorf("content should carry the cached record: %s", text.Text)
	}
}

func TestReadCachedMissIsEmptyObject(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	contents, err := s.readCached(parser.KindSchedule, readRequest("sports://schedule/absent"))
	if err != nil {
		t.Fatalf("an absent key is not an error: %v", err)
	}
	if got := contents[0].(mcp.TextResourceContents).Text; got != "{}" {
		t.Errorf("miss should serve an empty object, got %s", got)
	}
}

func TestReadServerInfo(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	contents, err := s.readServerInfo(context.Background(), readRequest("server://info"))
	if err != nil {
		t.Fatalf("readServerInfo: %v", err)
	}
	if !strings.Contains(contents[0].(mcp.TextResourceContents).Text, "get_schedule") {
		t.Error("server info should list the tools")
	}
}
