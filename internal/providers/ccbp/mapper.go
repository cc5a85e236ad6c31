package ccbp

import "github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"

func mapTeamMatches(resp teamMatchesResponse) matches.TeamMatches {
	view := matches.TeamMatches{
		TeamBannerURL: resp.TeamBannerURL,
		RecentMatches: make([]matches.Match, 0),
	}
	if resp.LatestMatchDetails != nil {
		latest := mapMatch(*resp.LatestMatchDetails)
		view.LatestMatch = &latest
	}
	if resp.RecentMatches != nil {
		for _, m := range *resp.RecentMatches {
			view.RecentMatches = append(view.RecentMatches, mapMatch(m))
		}
	}
	return view
}

// mapMatch renames fields only; values pass through untouched.
func mapMatch(m matchResponse) matches.Match {
	return matches.Match{
		Umpires:           []string(m.Umpires),
		Result:            m.Result,
		ManOfTheMatch:     m.ManOfTheMatch,
		ID:                m.ID,
		Date:              m.Date,
		Venue:             m.Venue,
		CompetingTeam:     m.CompetingTeam,
		CompetingTeamLogo: m.CompetingTeamLogo,
		FirstInnings:      m.FirstInnings,
		SecondInnings:     m.SecondInnings,
		MatchStatus:       m.MatchStatus,
	}
}
