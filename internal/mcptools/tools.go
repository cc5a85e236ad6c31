package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/preston-bernstein/ipl-matches-service/internal/app/teammatches"
	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
	"github.com/preston-bernstein/ipl-matches-service/internal/domain/teams"
)

const serverName = "ipl-matches"

// TeamArgs is the input schema shared by the per-team tools.
type TeamArgs struct {
	TeamID string `json:"team_id" jsonschema:"Team identifier as used in page routes, e.g. RCB, KKR, SH"`
}

// ListTeamsArgs is the input schema for list_teams (no parameters).
type ListTeamsArgs struct{}

// TeamMatchesResult is the output of team_matches.
type TeamMatchesResult struct {
	TeamID      string              `json:"teamId"`
	ThemeClass  string              `json:"themeClass"`
	TeamMatches matches.TeamMatches `json:"teamMatches"`
	Outcomes    matches.Outcomes    `json:"outcomes"`
}

// TeamOutcomesResult is the output of team_outcomes.
type TeamOutcomesResult struct {
	TeamID string `json:"teamId"`
	Won    int    `json:"won"`
	Lost   int    `json:"lost"`
	Drawn  int    `json:"drawn"`
	Total  int    `json:"total"`
}

// NewServer registers the team tools on a fresh MCP server.
func NewServer(svc *teammatches.Service, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_teams",
		Description: "Teams with a dedicated page and their theme class",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ListTeamsArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(teams.Known)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "team_matches",
		Description: "Banner, latest match, recent matches and won/lost/drawn counts for a team",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TeamArgs) (*mcp.CallToolResult, any, error) {
		state, err := load(ctx, svc, args.TeamID)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(TeamMatchesResult{
			TeamID:      state.TeamID,
			ThemeClass:  teams.ThemeClass(state.TeamID),
			TeamMatches: state.Matches,
			Outcomes:    state.Outcomes(),
		})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "team_outcomes",
		Description: "Won/lost/drawn counts across the latest and recent matches of a team",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TeamArgs) (*mcp.CallToolResult, any, error) {
		state, err := load(ctx, svc, args.TeamID)
		if err != nil {
			return toolError(err), nil, nil
		}
		o := state.Outcomes()
		return toolJSON(TeamOutcomesResult{
			TeamID: state.TeamID,
			Won:    o.Won,
			Lost:   o.Lost,
			Drawn:  o.Drawn,
			Total:  o.Total(),
		})
	})

	return server
}

// NewHTTPHandler serves the MCP server over streamable HTTP with plain JSON responses.
func NewHTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

func load(ctx context.Context, svc *teammatches.Service, teamID string) (matches.State, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return matches.State{}, fmt.Errorf("team_id is required")
	}
	if svc == nil {
		return matches.State{}, fmt.Errorf("%s", matches.FailureUnavailable.Message())
	}
	state, err := svc.Load(ctx, teamID)
	if state.Kind != matches.StateLoaded {
		return state, fmt.Errorf("%s (%s): %w", state.Failure.Message(), state.Failure, err)
	}
	return state, nil
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	res, err := json.Marshal(v)
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
