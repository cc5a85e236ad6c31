package matches

// StateKind identifies where a team page is in its lifecycle.
type StateKind string

const (
	StateLoading StateKind = "loading"
	StateLoaded  StateKind = "loaded"
	StateFailed  StateKind = "failed"
)

// FailureKind classifies why a fetch did not produce a view.
type FailureKind string

const (
	FailureNetwork     FailureKind = "network"
	FailureHTTPStatus  FailureKind = "http_status"
	FailureDecode      FailureKind = "decode"
	FailureCanceled    FailureKind = "canceled"
	FailureUnavailable FailureKind = "unavailable"
)

// State is the page state union: Loading, Loaded(view) or Failed(kind).
// Only the fields matching Kind are meaningful.
type State struct {
	Kind    StateKind
	TeamID  string
	Matches TeamMatches
	Failure FailureKind
}

// Loading returns the initial state for a team page.
func Loading(teamID string) State {
	return State{Kind: StateLoading, TeamID: teamID}
}

// Loaded returns the state after a successful fetch.
func Loaded(teamID string, view TeamMatches) State {
	return State{Kind: StateLoaded, TeamID: teamID, Matches: view}
}

// Failed returns the state after a fetch that could not produce a view.
func Failed(teamID string, kind FailureKind) State {
	return State{Kind: StateFailed, TeamID: teamID, Failure: kind}
}

// Outcomes recomputes the tally for a loaded state; other states tally to zero.
func (s State) Outcomes() Outcomes {
	if s.Kind != StateLoaded {
		return Outcomes{}
	}
	return Tally(s.Matches)
}

// Message is the user-facing text for a failed state.
func (k FailureKind) Message() string {
	switch k {
	case FailureNetwork:
		return "Could not reach the match data service."
	case FailureHTTPStatus:
		return "The match data service returned an error."
	case FailureDecode:
		return "The match data service sent data we could not read."
	case FailureCanceled:
		return "The request was canceled before the matches loaded."
	case FailureUnavailable:
		return "Match data is not available right now."
	default:
		return "Something went wrong while loading matches."
	}
}
