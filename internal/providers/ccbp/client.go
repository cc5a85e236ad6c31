package ccbp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
	"github.com/preston-bernstein/ipl-matches-service/internal/providers"
)

var (
	errMissingRecentMatches = errors.New("recent_matches missing from response")
	errTrailingData         = errors.New("unexpected data after response object")
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches a team's matches from the IPL API and normalizes them.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchTeamMatches issues GET <base>/<teamID> and maps the body to the normalized view.
func (c *Client) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamMatches, error) {
	req, err := c.buildRequest(ctx, teamID)
	if err != nil {
		return matches.TeamMatches{}, &providers.NetworkError{Provider: providerName, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return matches.TeamMatches{}, &providers.NetworkError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return matches.TeamMatches{}, &providers.HTTPStatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
		}
	}

	payload, err := decodeTeamMatches(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		// A body cut off by cancellation or a client timeout is a network failure, not a malformed payload.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return matches.TeamMatches{}, &providers.NetworkError{Provider: providerName, Err: ctxErr}
		}
		if isReadTimeout(err) {
			return matches.TeamMatches{}, &providers.NetworkError{Provider: providerName, Err: err}
		}
		return matches.TeamMatches{}, &providers.DecodeError{Provider: providerName, Err: err}
	}

	return mapTeamMatches(payload), nil
}

func (c *Client) buildRequest(ctx context.Context, teamID string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(teamID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func decodeTeamMatches(r io.Reader) (teamMatchesResponse, error) {
	var payload teamMatchesResponse
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return teamMatchesResponse{}, err
	}
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); err != io.EOF {
		if err == nil {
			err = errTrailingData
		}
		return teamMatchesResponse{}, err
	}
	if payload.RecentMatches == nil {
		return teamMatchesResponse{}, errMissingRecentMatches
	}
	return payload, nil
}

func isReadTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
