package server

import "time"

// writeTimeout exceeds the default upstream timeout so a slow fetch can still be rendered as Failed.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
