package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/ipl-matches-service/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
// Used for the provider label in metrics and logs.
func normalizeProviderName(raw string, provider providers.MatchesProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
