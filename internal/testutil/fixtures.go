package testutil

import (
	"fmt"

	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
)

// SampleMatch returns a minimal match fixture with the provided id and status.
func SampleMatch(id, status string) matches.Match {
	return matches.Match{
		Umpires:           []string{"Umpire One", "Umpire Two"},
		Result:            "Result " + id,
		ManOfTheMatch:     "Player " + id,
		ID:                id,
		Date:              "2020-10-01",
		Venue:             "Dubai",
		CompetingTeam:     "Opponent " + id,
		CompetingTeamLogo: "https://example.com/" + id + ".png",
		FirstInnings:      "Home",
		SecondInnings:     "Away",
		MatchStatus:       status,
	}
}

// SampleTeamMatches builds a view whose latest match has the first status and
// whose recent matches carry the rest, in order.
func SampleTeamMatches(statuses ...string) matches.TeamMatches {
	view := matches.TeamMatches{
		TeamBannerURL: "https://example.com/banner.png",
		RecentMatches: []matches.Match{},
	}
	if len(statuses) == 0 {
		return view
	}
	latest := SampleMatch("latest", statuses[0])
	view.LatestMatch = &latest
	for i, status := range statuses[1:] {
		view.RecentMatches = append(view.RecentMatches, SampleMatch(fmt.Sprintf("m%d", i+1), status))
	}
	return view
}
