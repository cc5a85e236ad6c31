package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
)

// StubProvider is a test double for providers.MatchesProvider.
type StubProvider struct {
	View   matches.TeamMatches
	Err    error
	Calls  atomic.Int32
	LastID atomic.Value
	Notify chan struct{}
}

// FetchTeamMatches returns the configured view and error while tracking calls.
func (s *StubProvider) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamMatches, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	s.LastID.Store(teamID)
	return s.View, s.Err
}

// LastTeamID returns the team id passed on the most recent call.
func (s *StubProvider) LastTeamID() string {
	if v, ok := s.LastID.Load().(string); ok {
		return v
	}
	return ""
}

// BlockingProvider waits for ctx to end and returns its error, simulating a client that leaves mid-fetch.
type BlockingProvider struct {
	Started chan struct{}
	once    sync.Once
}

// FetchTeamMatches blocks until ctx is done.
func (b *BlockingProvider) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamMatches, error) {
	_ = teamID
	if b.Started != nil {
		b.once.Do(func() { close(b.Started) })
	}
	<-ctx.Done()
	return matches.TeamMatches{}, ctx.Err()
}
