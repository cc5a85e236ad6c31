package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/ipl-matches-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. The agent endpoint is mounted only when mcp is non-nil.
func NewRouter(handler *handlers.Handler, mcp nethttp.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.Handle("/", handler)
	if mcp != nil {
		mux.Handle("/mcp", mcp)
		mux.Handle("/mcp/", mcp)
	}
	return mux
}
