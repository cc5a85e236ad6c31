package server

import (
	"log/slog"

	"github.com/preston-bernstein/ipl-matches-service/internal/config"
	"github.com/preston-bernstein/ipl-matches-service/internal/logging"
	"github.com/preston-bernstein/ipl-matches-service/internal/providers"
	"github.com/preston-bernstein/ipl-matches-service/internal/providers/ccbp"
	"github.com/preston-bernstein/ipl-matches-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.MatchesProvider {
	switch cfg.Provider {
	case "ccbp", "":
		return ccbp.NewClient(ccbp.Config{
			BaseURL: cfg.Upstream.BaseURL,
			Timeout: cfg.Upstream.Timeout,
		})
	case "fixture":
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", nil, slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}
