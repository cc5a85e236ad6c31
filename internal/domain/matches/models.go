package matches

// MatchStatus is the outcome label the upstream attaches to a match from the team's perspective.
// The vocabulary is open; only Won, Lost and Drawn are counted.
type MatchStatus = string

const (
	StatusWon   MatchStatus = "Won"
	StatusLost  MatchStatus = "Lost"
	StatusDrawn MatchStatus = "Drawn"
)

// Match is the normalized shape used for both the latest match and each recent match.
type Match struct {
	Umpires           []string `json:"umpires"`
	Result            string   `json:"result"`
	ManOfTheMatch     string   `json:"manOfTheMatch"`
	ID                string   `json:"id"`
	Date              string   `json:"date"`
	Venue             string   `json:"venue"`
	CompetingTeam     string   `json:"competingTeam"`
	CompetingTeamLogo string   `json:"competingTeamLogo"`
	FirstInnings      string   `json:"firstInnings"`
	SecondInnings     string   `json:"secondInnings"`
	MatchStatus       string   `json:"matchStatus"`
}

// TeamMatches is the view state for one team page.
type TeamMatches struct {
	TeamBannerURL string  `json:"teamBannerUrl"`
	LatestMatch   *Match  `json:"latestMatch"`
	RecentMatches []Match `json:"recentMatches"`
}

// HasLatest reports whether the upstream returned a latest match.
func (t TeamMatches) HasLatest() bool {
	return t.LatestMatch != nil
}
