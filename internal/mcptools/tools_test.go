package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/preston-bernstein/ipl-matches-service/internal/app/teammatches"
	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
	"github.com/preston-bernstein/ipl-matches-service/internal/providers"
	"github.com/preston-bernstein/ipl-matches-service/internal/testutil"
)

func connect(t *testing.T, svc *teammatches.Service) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	server := NewServer(svc, "test")

	st, ct := mcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, st, nil); err != nil {
		t.Fatalf("server connect: %v", err)
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	cs, err := client.Connect(ctx, ct, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func callText(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any) (*mcp.CallToolResult, string) {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("call %s: %v", name, err)
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(res.Content))
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return res, text.Text
}

func TestToolsAreListed(t *testing.T) {
	cs := connect(t, testutil.NewServiceWithView(matches.TeamMatches{}))

	res, err := cs.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	names := map[string]bool{}
	for _, tool := range res.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"list_teams", "team_matches", "team_outcomes"} {
		if !names[want] {
			t.Fatalf("expected tool %s, got %v", want, names)
		}
	}
}

func TestTeamMatchesTool(t *testing.T) {
	view := testutil.SampleTeamMatches(matches.StatusWon, matches.StatusLost, matches.StatusDrawn, "Abandoned")
	cs := connect(t, testutil.NewServiceWithView(view))

	res, text := callText(t, cs, "team_matches", map[string]any{"team_id": "SH"})
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", text)
	}
	var out TeamMatchesResult
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if out.TeamID != "SH" || out.ThemeClass != "srh" {
		t.Fatalf("unexpected identity %+v", out)
	}
	if out.Outcomes != (matches.Outcomes{Won: 1, Lost: 1, Drawn: 1}) {
		t.Fatalf("unexpected outcomes %+v", out.Outcomes)
	}
	if len(out.TeamMatches.RecentMatches) != 3 {
		t.Fatalf("expected 3 recent matches, got %d", len(out.TeamMatches.RecentMatches))
	}
}

func TestTeamOutcomesTool(t *testing.T) {
	view := testutil.SampleTeamMatches(matches.StatusWon, matches.StatusWon, matches.StatusLost)
	cs := connect(t, testutil.NewServiceWithView(view))

	_, text := callText(t, cs, "team_outcomes", map[string]any{"team_id": "MI"})
	var out TeamOutcomesResult
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if out.Won != 2 || out.Lost != 1 || out.Drawn != 0 || out.Total != 3 {
		t.Fatalf("unexpected outcomes %+v", out)
	}
}

func TestTeamToolReportsFailure(t *testing.T) {
	svc := testutil.NewServiceWithProvider(testutil.ErrProvider{Err: &providers.DecodeError{Provider: "ccbp", Err: errors.New("bad")}})
	cs := connect(t, svc)

	res, text := callText(t, cs, "team_outcomes", map[string]any{"team_id": "DC"})
	if !res.IsError {
		t.Fatalf("expected tool error")
	}
	if !strings.Contains(text, "decode") {
		t.Fatalf("expected failure kind in message, got %q", text)
	}
}

func TestTeamToolRequiresTeamID(t *testing.T) {
	cs := connect(t, testutil.NewServiceWithView(matches.TeamMatches{}))

	res, text := callText(t, cs, "team_matches", map[string]any{"team_id": "  "})
	if !res.IsError || !strings.Contains(text, "team_id is required") {
		t.Fatalf("expected required error, got %q", text)
	}
}

func TestListTeamsTool(t *testing.T) {
	cs := connect(t, nil)

	_, text := callText(t, cs, "list_teams", map[string]any{})
	if !strings.Contains(text, `"RCB"`) || !strings.Contains(text, `"srh"`) {
		t.Fatalf("expected known teams, got %s", text)
	}
}

func TestNewHTTPHandlerRejectsPlainGet(t *testing.T) {
	h := NewHTTPHandler(NewServer(nil, "test"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/mcp", nil))
	if rr.Code < 400 {
		t.Fatalf("expected client error for bare GET, got %d", rr.Code)
	}
}
