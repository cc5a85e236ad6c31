package teammatches

import (
	"context"
	"errors"
	"log/slog"

	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
	"github.com/preston-bernstein/ipl-matches-service/internal/logging"
	"github.com/preston-bernstein/ipl-matches-service/internal/metrics"
	"github.com/preston-bernstein/ipl-matches-service/internal/providers"
)

// Service turns one upstream fetch into a page state.
type Service struct {
	provider providers.MatchesProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewService constructs a Service. A nil provider makes every load fail as unavailable.
func NewService(provider providers.MatchesProvider, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
		metrics:  recorder,
	}
}

// Load fetches the team's matches once and resolves the page to Loaded or Failed.
// The returned error is the classified fetch error, nil when loaded.
func (s *Service) Load(ctx context.Context, teamID string) (matches.State, error) {
	if s == nil || s.provider == nil {
		return s.finish(ctx, matches.Failed(teamID, matches.FailureUnavailable)), providers.ErrProviderUnavailable
	}

	view, err := s.provider.FetchTeamMatches(ctx, teamID)
	if err != nil {
		return s.finish(ctx, matches.Failed(teamID, providers.KindOf(err))), err
	}
	if view.RecentMatches == nil {
		view.RecentMatches = []matches.Match{}
	}
	return s.finish(ctx, matches.Loaded(teamID, view)), nil
}

func (s *Service) finish(ctx context.Context, state matches.State) matches.State {
	if s == nil {
		return state
	}
	if s.metrics != nil {
		s.metrics.RecordPageRender(string(state.Kind))
	}
	if state.Kind == matches.StateFailed && !errors.Is(ctx.Err(), context.Canceled) {
		logging.FromContext(ctx, s.logger).Debug("team page failed",
			logging.FieldTeamID, state.TeamID,
			logging.FieldFailureKind, string(state.Failure),
		)
	}
	return state
}
