package view

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
	"github.com/preston-bernstein/ipl-matches-service/internal/domain/teams"
)

const (
	homePath    = "/"
	teamPathFmt = "/team-matches/%s"
)

// TeamPath is the page URL for a team identifier.
func TeamPath(teamID string) string {
	return fmt.Sprintf(teamPathFmt, escapePathSegment(teamID))
}

// ContentPath is the fragment URL the loading shell fetches.
func ContentPath(teamID string) string {
	return TeamPath(teamID) + "/content"
}

// Home lists the teams with a link to each team page.
func Home(known []teams.Team) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw(documentHead("IPL Dashboard"))
		hw.raw(`<div class="home-container"><h1 class="home-heading">IPL Dashboard</h1><ul class="teams-list">`)
		for _, team := range known {
			hw.raw(`<li class="team-card `)
			hw.text(team.ThemeClass)
			hw.raw(`"><a class="team-link" href="`)
			hw.text(TeamPath(team.ID))
			hw.raw(`">`)
			hw.text(team.Name)
			hw.raw(`</a></li>`)
		}
		hw.raw(`</ul></div>`)
		hw.raw(documentFoot)
		return hw.err
	})
}

// LoadingPage is the full document served first: the container and the loader.
// An inline script fetches the content fragment and swaps it in, aborting on pagehide.
func LoadingPage(teamID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw(documentHead("Team Matches"))
		hw.raw(`<div id="team-matches" class="`)
		hw.text(teams.ContainerClass(teamID))
		hw.raw(`" data-content-url="`)
		hw.text(ContentPath(teamID))
		hw.raw(`">`)
		writeLoader(hw)
		hw.raw(`</div><noscript><a class="link-for-back" href="`)
		hw.text(TeamPath(teamID) + "?render=full")
		hw.raw(`">View matches</a></noscript>`)
		hw.raw(swapScript)
		hw.raw(documentFoot)
		return hw.err
	})
}

// Content renders the body of the team container for a resolved state.
// Loading renders only the loader; Loaded and Failed never include it.
func Content(state matches.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		switch state.Kind {
		case matches.StateLoaded:
			writeLoaded(hw, state)
		case matches.StateFailed:
			writeFailed(hw, state)
		default:
			writeLoader(hw)
		}
		return hw.err
	})
}

// Page wraps Content in the team container, for clients that do not run the swap script.
func Page(state matches.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw(documentHead("Team Matches"))
		hw.raw(`<div id="team-matches" class="`)
		hw.text(teams.ContainerClass(state.TeamID))
		hw.raw(`">`)
		if hw.err == nil {
			hw.err = Content(state).Render(ctx, w)
		}
		hw.raw(`</div>`)
		hw.raw(documentFoot)
		return hw.err
	})
}

func writeLoader(hw *htmlWriter) {
	hw.raw(`<div data-testid="loader" class="loader-container"><div class="loader" role="status" aria-label="Loading"></div></div>`)
}

func writeLoaded(hw *htmlWriter, state matches.State) {
	view := state.Matches
	hw.raw(`<div class="responsive-container"><img class="team-banner" alt="team banner" src="`)
	hw.text(view.TeamBannerURL)
	hw.raw(`"/>`)

	if view.LatestMatch != nil {
		writeLatestMatch(hw, *view.LatestMatch)
	}

	writeOutcomes(hw, state.Outcomes())

	hw.raw(`<ul class="recent-matches-list">`)
	for _, m := range view.RecentMatches {
		writeMatchCard(hw, m)
	}
	hw.raw(`</ul>`)
	writeBackLink(hw)
	hw.raw(`</div>`)
}

func writeLatestMatch(hw *htmlWriter, m matches.Match) {
	hw.raw(`<div class="latest-match-container"><h1 class="latest-match-heading">Latest Matches</h1><div class="latest-match-card">`)
	hw.raw(`<div class="latest-match-details"><p class="latest-match-team-name">`)
	hw.text(m.CompetingTeam)
	hw.raw(`</p><p class="latest-match-date">`)
	hw.text(m.Date)
	hw.raw(`</p><p class="latest-match-venue">`)
	hw.text(m.Venue)
	hw.raw(`</p><p class="latest-match-result">`)
	hw.text(m.Result)
	hw.raw(`</p></div><img class="latest-match-team-logo" alt="`)
	hw.text("latest match " + m.CompetingTeam)
	hw.raw(`" src="`)
	hw.text(m.CompetingTeamLogo)
	hw.raw(`"/><dl class="latest-match-innings">`)
	writeDetail(hw, "First Innings", m.FirstInnings)
	writeDetail(hw, "Second Innings", m.SecondInnings)
	writeDetail(hw, "Man Of The Match", m.ManOfTheMatch)
	writeDetail(hw, "Umpires", strings.Join(m.Umpires, ", "))
	hw.raw(`</dl></div></div>`)
}

func writeDetail(hw *htmlWriter, label, value string) {
	hw.raw(`<dt class="latest-match-label">`)
	hw.text(label)
	hw.raw(`</dt><dd class="latest-match-value">`)
	hw.text(value)
	hw.raw(`</dd>`)
}

func writeOutcomes(hw *htmlWriter, o matches.Outcomes) {
	hw.raw(`<figure class="outcomes-chart" data-testid="outcomes-chart"><div class="pie-chart">`)
	if hw.err == nil {
		hw.err = RenderChart(hw.w, o)
	}
	hw.raw(`</div><ul class="chart-legend legend-vertical legend-right">`)
	for _, s := range Slices(o) {
		hw.raw(`<li class="legend-item"><span class="legend-icon legend-circle" style="background-color:#`)
		hw.text(s.Color)
		hw.raw(`"></span><span class="legend-label">`)
		hw.text(s.Label)
		hw.raw(`</span><span class="legend-value">`)
		hw.text(fmt.Sprint(s.Value))
		hw.raw(`</span></li>`)
	}
	hw.raw(`</ul></figure>`)
}

func writeMatchCard(hw *htmlWriter, m matches.Match) {
	hw.raw(`<li class="match-card" data-match-id="`)
	hw.text(m.ID)
	hw.raw(`"><img class="match-card-logo" alt="`)
	hw.text("competing team " + m.CompetingTeam)
	hw.raw(`" src="`)
	hw.text(m.CompetingTeamLogo)
	hw.raw(`"/><p class="match-card-team">`)
	hw.text(m.CompetingTeam)
	hw.raw(`</p><p class="match-card-result">`)
	hw.text(m.Result)
	hw.raw(`</p><p class="match-card-status `)
	hw.text(statusClass(m.MatchStatus))
	hw.raw(`">`)
	hw.text(m.MatchStatus)
	hw.raw(`</p></li>`)
}

func writeFailed(hw *htmlWriter, state matches.State) {
	hw.raw(`<div class="failure-container" data-testid="failure" data-failure-kind="`)
	hw.text(string(state.Failure))
	hw.raw(`"><p class="failure-message">`)
	hw.text(state.Failure.Message())
	hw.raw(`</p>`)
	writeBackLink(hw)
	hw.raw(`</div>`)
}

func writeBackLink(hw *htmlWriter) {
	hw.raw(`<div class="back-button-container"><a class="link-for-back" href="`)
	hw.text(homePath)
	hw.raw(`"><button class="back-button" type="button">Back</button></a></div>`)
}

func statusClass(status string) string {
	switch status {
	case matches.StatusWon:
		return "match-won"
	case matches.StatusLost:
		return "match-lost"
	case matches.StatusDrawn:
		return "match-drawn"
	default:
		return "match-other"
	}
}
