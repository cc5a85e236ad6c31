package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
	"github.com/preston-bernstein/ipl-matches-service/internal/logging"
	"github.com/preston-bernstein/ipl-matches-service/internal/metrics"
)

// instrumentedProvider wraps a MatchesProvider with metrics and classified failure logs.
// Each call reaches the inner provider exactly once.
type instrumentedProvider struct {
	inner        MatchesProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps inner. A nil inner yields ErrProviderUnavailable on every call.
func NewInstrumentedProvider(inner MatchesProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) MatchesProvider {
	if providerName == "" {
		providerName = "provider"
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamMatches, error) {
	if p.inner == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "provider unavailable")
		return matches.TeamMatches{}, ErrProviderUnavailable
	}

	start := p.now()
	view, err := p.inner.FetchTeamMatches(ctx, teamID)
	elapsed := p.now().Sub(start)

	p.metrics.RecordProviderAttempt(p.providerName, elapsed, err)
	if err != nil {
		kind := KindOf(err)
		p.metrics.RecordProviderFailure(p.providerName, string(kind))
		if statusErr, ok := AsHTTPStatusError(err); ok && statusErr.RateLimited() {
			p.metrics.RecordRateLimit(p.providerName, statusErr.RetryAfter)
		}
		level := slog.LevelWarn
		if kind == matches.FailureCanceled {
			level = slog.LevelInfo
		}
		logWithProvider(ctx, p.logger, level, p.providerName, "provider fetch failed",
			slog.String(logging.FieldTeamID, teamID),
			slog.String(logging.FieldFailureKind, string(kind)),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		)
		return matches.TeamMatches{}, err
	}

	logWithProvider(ctx, p.logger, slog.LevelInfo, p.providerName, "provider fetched team matches",
		slog.String(logging.FieldTeamID, teamID),
		slog.Int(logging.FieldCount, len(view.RecentMatches)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return view, nil
}
