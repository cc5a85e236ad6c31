package testutil

import (
	"github.com/preston-bernstein/ipl-matches-service/internal/app/teammatches"
	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
	"github.com/preston-bernstein/ipl-matches-service/internal/providers"
)

// NewServiceWithView builds a team matches service whose provider always returns view.
func NewServiceWithView(view matches.TeamMatches) *teammatches.Service {
	return teammatches.NewService(GoodProvider{View: view}, nil, nil)
}

// NewServiceWithProvider builds a team matches service around the given provider.
func NewServiceWithProvider(p providers.MatchesProvider) *teammatches.Service {
	return teammatches.NewService(p, nil, nil)
}
