package config

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	Provider   string
	Version    string
	MCPEnabled bool
	Upstream   UpstreamConfig
	Metrics    MetricsConfig
	Logging    LoggingConfig
}

// LoggingConfig selects the log level and handler format.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		Provider:   envOrDefault(envProvider, defaultProvider),
		Version:    envOrDefault(envVersion, defaultVersion),
		MCPEnabled: boolEnvOrDefault(envMCPEnabled, false),
		Upstream:   loadUpstream(),
		Metrics:    loadMetrics(),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}
