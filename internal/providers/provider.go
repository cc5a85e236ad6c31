package providers

import (
	"context"

	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
)

// MatchesProvider fetches one team's matches and returns them normalized.
// Implementations must honor ctx cancellation and return errors classifiable by KindOf.
type MatchesProvider interface {
	FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamMatches, error)
}
