package matches

// Outcomes is the won/lost/drawn tally that drives the pie chart.
type Outcomes struct {
	Won   int `json:"won"`
	Lost  int `json:"lost"`
	Drawn int `json:"drawn"`
}

// Total returns the number of matches that landed in a counter.
func (o Outcomes) Total() int {
	return o.Won + o.Lost + o.Drawn
}

// Tally counts the latest match (when present) and every recent match by status.
// Statuses outside Won/Lost/Drawn contribute nothing.
func Tally(view TeamMatches) Outcomes {
	var out Outcomes
	if view.LatestMatch != nil {
		out.add(view.LatestMatch.MatchStatus)
	}
	for _, m := range view.RecentMatches {
		out.add(m.MatchStatus)
	}
	return out
}

func (o *Outcomes) add(status string) {
	switch status {
	case StatusWon:
		o.Won++
	case StatusLost:
		o.Lost++
	case StatusDrawn:
		o.Drawn++
	}
}
