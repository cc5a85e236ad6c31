package testutil

import (
	"context"

	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
	"github.com/preston-bernstein/ipl-matches-service/internal/providers"
)

// GoodProvider returns the provided view with no error.
type GoodProvider struct {
	View matches.TeamMatches
}

func (p GoodProvider) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamMatches, error) {
	_ = ctx
	_ = teamID
	return p.View, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamMatches, error) {
	return matches.TeamMatches{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamMatches, error) {
	return matches.TeamMatches{}, providers.ErrProviderUnavailable
}
