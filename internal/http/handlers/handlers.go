package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/preston-bernstein/ipl-matches-service/internal/app/teammatches"
	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
	"github.com/preston-bernstein/ipl-matches-service/internal/domain/teams"
	"github.com/preston-bernstein/ipl-matches-service/internal/http/requestutil"
	"github.com/preston-bernstein/ipl-matches-service/internal/logging"
	"github.com/preston-bernstein/ipl-matches-service/internal/providers"
	"github.com/preston-bernstein/ipl-matches-service/internal/view"
)

const (
	teamPagePrefix = "/team-matches/"
	teamAPIPrefix  = "/api/team-matches/"
	contentSuffix  = "/content"
)

// Handler wires HTTP routes to the team matches service and views.
type Handler struct {
	svc     *teammatches.Service
	logger  *slog.Logger
	readyFn func() bool
}

// NewHandler constructs a Handler. A nil readyFn reports ready.
func NewHandler(svc *teammatches.Service, logger *slog.Logger, readyFn func() bool) *Handler {
	return &Handler{
		svc:     svc,
		logger:  logger,
		readyFn: readyFn,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	path := r.URL.Path
	switch {
	case path == "/":
		h.Home(w, r)
	case path == "/health":
		h.Health(w, r)
	case path == "/ready":
		h.Ready(w, r)
	case strings.HasPrefix(path, teamAPIPrefix):
		h.TeamAPI(w, r)
	case isContentPath(path):
		h.TeamContent(w, r)
	case strings.HasPrefix(path, teamPagePrefix):
		h.TeamPage(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// isContentPath matches /team-matches/{id}/content; the suffix must not overlap the prefix.
func isContentPath(path string) bool {
	return len(path) > len(teamPagePrefix)+len(contentSuffix) &&
		strings.HasPrefix(path, teamPagePrefix) &&
		strings.HasSuffix(path, contentSuffix)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.readyFn != nil && !h.readyFn() {
		writeError(w, r, nethttp.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Home lists the known teams.
func (h *Handler) Home(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	renderHTML(w, r, view.Home(teams.Known), nethttp.StatusOK, h.logger)
}

// TeamPage serves the loading shell for /team-matches/{id}.
// With ?render=full it resolves the state first and serves the finished page.
func (h *Handler) TeamPage(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	teamID, ok := requestutil.TeamIDFromPath(r.URL.Path, teamPagePrefix, "")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}

	if r.URL.Query().Get("render") != "full" {
		renderHTML(w, r, view.LoadingPage(teamID), nethttp.StatusOK, h.logger)
		return
	}

	state, err := h.svc.Load(r.Context(), teamID)
	if r.Context().Err() != nil {
		return
	}
	renderHTML(w, r, view.Page(state), statusFor(state, err), h.logger)
}

// TeamContent resolves the team state and serves the loaded or failed fragment.
func (h *Handler) TeamContent(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	teamID, ok := requestutil.TeamIDFromPath(r.URL.Path, teamPagePrefix, contentSuffix)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}

	state, err := h.svc.Load(r.Context(), teamID)
	if r.Context().Err() != nil {
		// the page went away; nothing is written after cancellation
		return
	}
	renderHTML(w, r, view.Content(state), statusFor(state, err), h.logger)
}

// TeamAPI returns the resolved state for a team as JSON.
func (h *Handler) TeamAPI(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	teamID, ok := requestutil.TeamIDFromPath(r.URL.Path, teamAPIPrefix, "")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}

	state, err := h.svc.Load(r.Context(), teamID)
	if r.Context().Err() != nil {
		return
	}

	resp := teamMatchesResponse{
		State:      state.Kind,
		TeamID:     teamID,
		ThemeClass: teams.ThemeClass(teamID),
	}
	if state.Kind == matches.StateLoaded {
		view := state.Matches
		outcomes := state.Outcomes()
		resp.TeamMatches = &view
		resp.Outcomes = &outcomes
	} else {
		resp.Error = state.Failure.Message()
		resp.FailureKind = state.Failure
		resp.RequestID = requestID(r)
	}
	writeJSON(w, statusFor(state, err), resp, h.logger)

	logging.FromContext(r.Context(), h.logger).Debug("served team matches",
		logging.FieldTeamID, teamID,
		logging.FieldState, string(state.Kind),
	)
}

type teamMatchesResponse struct {
	State       matches.StateKind    `json:"state"`
	TeamID      string               `json:"teamId"`
	ThemeClass  string               `json:"themeClass"`
	TeamMatches *matches.TeamMatches `json:"teamMatches,omitempty"`
	Outcomes    *matches.Outcomes    `json:"outcomes,omitempty"`
	Error       string               `json:"error,omitempty"`
	FailureKind matches.FailureKind  `json:"failureKind,omitempty"`
	RequestID   string               `json:"requestId,omitempty"`
}

// statusFor maps a resolved state to the response status.
// Upstream failures are 502, deadlines 504, a missing provider 503.
func statusFor(state matches.State, err error) int {
	if state.Kind == matches.StateLoaded {
		return nethttp.StatusOK
	}
	switch {
	case providers.IsTimeout(err):
		return nethttp.StatusGatewayTimeout
	case state.Failure == matches.FailureUnavailable:
		return nethttp.StatusServiceUnavailable
	default:
		return nethttp.StatusBadGateway
	}
}

func renderHTML(w nethttp.ResponseWriter, r *nethttp.Request, c templ.Component, status int, logger *slog.Logger) {
	w.Header().Set("Cache-Control", "no-store")
	templ.Handler(c,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *nethttp.Request, err error) nethttp.Handler {
			logging.Error(loggerFromContext(r, logger), "failed to render page", err)
			return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				writeError(w, r, nethttp.StatusInternalServerError, "render failed", logger)
			})
		}),
	).ServeHTTP(w, r)
}
