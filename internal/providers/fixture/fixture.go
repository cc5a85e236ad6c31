package fixture

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
	"github.com/preston-bernstein/ipl-matches-service/internal/domain/teams"
	"github.com/preston-bernstein/ipl-matches-service/internal/providers"
)

const (
	providerName = "fixture"
	recentCount  = 6
	assetBase    = "https://assets.ccbp.in/frontend/react-js"
)

var (
	seasonStart = time.Date(2020, time.September, 19, 0, 0, 0, 0, time.UTC)
	statusCycle = []matches.MatchStatus{
		matches.StatusWon,
		matches.StatusLost,
		matches.StatusWon,
		matches.StatusDrawn,
		matches.StatusLost,
		matches.StatusWon,
		matches.StatusLost,
	}
	venues = []string{
		"At Dubai International Cricket Stadium, Dubai",
		"At Sheikh Zayed Stadium, Abu Dhabi",
		"At Sharjah Cricket Stadium, Sharjah",
	}
)

// Provider returns a deterministic set of matches for the known teams, useful for local runs.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchTeamMatches builds the same view for a given team on every call.
// Unknown teams yield a 404 status error, matching what the live API does.
func (p *Provider) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamMatches, error) {
	if err := ctx.Err(); err != nil {
		return matches.TeamMatches{}, &providers.NetworkError{Provider: providerName, Err: err}
	}

	index, team, ok := lookup(teamID)
	if !ok {
		return matches.TeamMatches{}, &providers.HTTPStatusError{
			Provider:   providerName,
			StatusCode: http.StatusNotFound,
			Body:       "team not found",
		}
	}

	opponents := opponentsOf(team.ID)
	latest := buildMatch(team, opponents[0], index, 0)
	view := matches.TeamMatches{
		TeamBannerURL: fmt.Sprintf("%s/%s-logo-img.png", assetBase, strings.ToLower(team.ID)),
		LatestMatch:   &latest,
		RecentMatches: make([]matches.Match, 0, recentCount),
	}
	for i := 1; i <= recentCount; i++ {
		view.RecentMatches = append(view.RecentMatches, buildMatch(team, opponents[i%len(opponents)], index, i))
	}
	return view, nil
}

func lookup(teamID string) (int, teams.Team, bool) {
	for i, team := range teams.Known {
		if team.ID == teamID {
			return i, team, true
		}
	}
	return 0, teams.Team{}, false
}

func opponentsOf(teamID string) []teams.Team {
	out := make([]teams.Team, 0, len(teams.Known)-1)
	for _, team := range teams.Known {
		if team.ID != teamID {
			out = append(out, team)
		}
	}
	return out
}

func buildMatch(team, opponent teams.Team, teamIndex, matchIndex int) matches.Match {
	status := statusCycle[(teamIndex+matchIndex)%len(statusCycle)]
	first, second := team.Name, opponent.Name
	if matchIndex%2 == 1 {
		first, second = second, first
	}
	return matches.Match{
		Umpires:           []string{"Anil Chaudhary", "Nitin Menon"},
		Result:            resultLine(team.Name, opponent.Name, status),
		ManOfTheMatch:     fmt.Sprintf("Player %d", matchIndex+1),
		ID:                fmt.Sprintf("%s-%02d", strings.ToLower(team.ID), matchIndex+1),
		Date:              seasonStart.AddDate(0, 0, 3*(recentCount-matchIndex)).Format("2006-01-02"),
		Venue:             venues[matchIndex%len(venues)],
		CompetingTeam:     opponent.Name,
		CompetingTeamLogo: fmt.Sprintf("%s/%s-logo-img.png", assetBase, strings.ToLower(opponent.ID)),
		FirstInnings:      first,
		SecondInnings:     second,
		MatchStatus:       status,
	}
}

func resultLine(team, opponent string, status matches.MatchStatus) string {
	switch status {
	case matches.StatusWon:
		return team + " Won by 6 wickets"
	case matches.StatusLost:
		return opponent + " Won by 18 runs"
	default:
		return "Match tied"
	}
}
