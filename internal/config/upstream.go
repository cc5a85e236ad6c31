package config

// UpstreamConfig controls how we reach the IPL match data API.
type UpstreamConfig struct {
	BaseURL string
	Timeout Duration
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		BaseURL: envOrDefault(envUpstreamBaseURL, defaultUpstreamBaseURL),
		Timeout: durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
	}
}
