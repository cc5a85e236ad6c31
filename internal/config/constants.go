package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envUpstreamBaseURL = "UPSTREAM_BASE_URL"
	envUpstreamTimeout = "UPSTREAM_TIMEOUT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envMCPEnabled      = "MCP_ENABLED"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envVersion         = "APP_VERSION"

	defaultPort            = "4000"
	defaultProvider        = "ccbp"
	defaultUpstreamBaseURL = "https://apis.ccbp.in/ipl"
	defaultUpstreamTimeout = 10 * Duration(time.Second)
	defaultMetricsPort     = "9090"
	defaultServiceName     = "ipl-matches-service"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultVersion         = "dev"
)
