package ccbp

import (
	"bytes"
	"encoding/json"
)

type teamMatchesResponse struct {
	TeamBannerURL      string           `json:"team_banner_url"`
	LatestMatchDetails *matchResponse   `json:"latest_match_details"`
	RecentMatches      *[]matchResponse `json:"recent_matches"`
}

type matchResponse struct {
	Umpires           umpireList `json:"umpires"`
	Result            string     `json:"result"`
	ManOfTheMatch     string     `json:"man_of_the_match"`
	ID                string     `json:"id"`
	Date              string     `json:"date"`
	Venue             string     `json:"venue"`
	CompetingTeam     string     `json:"competing_team"`
	CompetingTeamLogo string     `json:"competing_team_logo"`
	FirstInnings      string     `json:"first_innings"`
	SecondInnings     string     `json:"second_innings"`
	MatchStatus       string     `json:"match_status"`
}

// umpireList accepts either a JSON array of names or a single bare string.
type umpireList []string

func (u *umpireList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*u = umpireList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(trimmed, &many); err != nil {
		return err
	}
	*u = many
	return nil
}
