package server

import (
	"log/slog"

	"github.com/preston-bernstein/ipl-matches-service/internal/config"
	"github.com/preston-bernstein/ipl-matches-service/internal/metrics"
	"github.com/preston-bernstein/ipl-matches-service/internal/providers"
)

// providerFactory assembles the configured provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.MatchesProvider {
	base := selectProvider(cfg, f.logger)
	return f.wrap(cfg, base)
}

func (f providerFactory) wrap(cfg config.Config, base providers.MatchesProvider) providers.MatchesProvider {
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base))
}
