package ccbp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
	"github.com/preston-bernstein/ipl-matches-service/internal/providers"
)

const sampleBody = `{
	"team_banner_url": "https://assets.ccbp.in/frontend/react-js/rcb-logo-img.png",
	"latest_match_details": {
		"umpires": "CB Gaffaney, VK Sharma",
		"result": "Royal Challengers Bangalore Won by 7 wickets",
		"man_of_the_match": "AB de Villiers",
		"id": "1216545",
		"date": "2020-10-21",
		"venue": "At Sheikh Zayed Stadium, Abu Dhabi",
		"competing_team": "Kolkata Knight Riders",
		"competing_team_logo": "https://assets.ccbp.in/kkr.png",
		"first_innings": "Kolkata Knight Riders",
		"second_innings": "Royal Challengers Bangalore",
		"match_status": "Won"
	},
	"recent_matches": [
		{
			"umpires": ["A Nand Kishore", "S Ravi"],
			"result": "Mumbai Indians Won by 5 wickets",
			"man_of_the_match": "SA Yadav",
			"id": "1216534",
			"date": "2020-10-28",
			"venue": "At Sheikh Zayed Stadium, Abu Dhabi",
			"competing_team": "Mumbai Indians",
			"competing_team_logo": "https://assets.ccbp.in/mi.png",
			"first_innings": "Royal Challengers Bangalore",
			"second_innings": "Mumbai Indians",
			"match_status": "Lost"
		},
		{
			"umpires": [],
			"result": "Match tied",
			"man_of_the_match": "",
			"id": "1216500",
			"date": "2020-10-31",
			"venue": "Dubai",
			"competing_team": "Sunrisers Hyderabad",
			"competing_team_logo": "https://assets.ccbp.in/srh.png",
			"first_innings": "Royal Challengers Bangalore",
			"second_innings": "Sunrisers Hyderabad",
			"match_status": "Drawn"
		}
	]
}`

func TestFetchTeamMatchesHitsAPIAndMapsResponse(t *testing.T) {
	var capturedPath, capturedAccept string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		capturedAccept = req.Header.Get("Accept")
		return jsonResponse(http.StatusOK, sampleBody), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/ipl/",
		HTTPClient: &http.Client{Transport: rt},
	})

	view, err := client.FetchTeamMatches(context.Background(), "RCB")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedPath != "/ipl/RCB" {
		t.Fatalf("expected /ipl/RCB path, got %s", capturedPath)
	}
	if capturedAccept != "application/json" {
		t.Fatalf("expected json accept header, got %q", capturedAccept)
	}
	if view.TeamBannerURL != "https://assets.ccbp.in/frontend/react-js/rcb-logo-img.png" {
		t.Fatalf("unexpected banner %q", view.TeamBannerURL)
	}
	if !view.HasLatest() || view.LatestMatch.ManOfTheMatch != "AB de Villiers" {
		t.Fatalf("unexpected latest match %+v", view.LatestMatch)
	}
	if len(view.LatestMatch.Umpires) != 1 || view.LatestMatch.Umpires[0] != "CB Gaffaney, VK Sharma" {
		t.Fatalf("expected bare umpire string wrapped, got %#v", view.LatestMatch.Umpires)
	}
	if len(view.RecentMatches) != 2 {
		t.Fatalf("expected 2 recent matches, got %d", len(view.RecentMatches))
	}
	if view.RecentMatches[0].ID != "1216534" || view.RecentMatches[1].ID != "1216500" {
		t.Fatalf("expected upstream order preserved, got %+v", view.RecentMatches)
	}
	if got := matches.Tally(view); got != (matches.Outcomes{Won: 1, Lost: 1, Drawn: 1}) {
		t.Fatalf("unexpected outcomes %+v", got)
	}
}

func TestFetchTeamMatchesEscapesTeamID(t *testing.T) {
	var capturedRaw string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedRaw = req.URL.EscapedPath()
		return jsonResponse(http.StatusOK, `{"team_banner_url":"","recent_matches":[]}`), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchTeamMatches(context.Background(), "a b"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedRaw != "/a%20b" {
		t.Fatalf("expected escaped path, got %s", capturedRaw)
	}
}

func TestFetchTeamMatchesAllowsNullLatestAndEmptyRecent(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"team_banner_url":"b.png","latest_match_details":null,"recent_matches":[]}`), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	view, err := client.FetchTeamMatches(context.Background(), "DC")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if view.HasLatest() {
		t.Fatalf("expected no latest match")
	}
	if view.RecentMatches == nil || len(view.RecentMatches) != 0 {
		t.Fatalf("expected empty non-nil recent list, got %#v", view.RecentMatches)
	}
}

func TestFetchTeamMatchesHandlesNon2xx(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "slow down")
		resp.Header.Set("Retry-After", "30")
		return resp, nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchTeamMatches(context.Background(), "MI")
	statusErr, ok := providers.AsHTTPStatusError(err)
	if !ok {
		t.Fatalf("expected HTTPStatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusTooManyRequests || statusErr.Body != "slow down" {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
	if statusErr.RetryAfter != 30*time.Second || !statusErr.RateLimited() {
		t.Fatalf("expected rate limit with retry-after, got %+v", statusErr)
	}
	if providers.KindOf(err) != matches.FailureHTTPStatus {
		t.Fatalf("expected http_status kind, got %s", providers.KindOf(err))
	}
}

func TestFetchTeamMatchesDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"malformed":        `{bad json`,
		"array body":       `[]`,
		"null body":        `null`,
		"missing recent":   `{"team_banner_url":"x"}`,
		"wrong type":       `{"team_banner_url":42,"recent_matches":[]}`,
		"umpires numeric":  `{"recent_matches":[{"umpires":7}]}`,
		"trailing garbage": `{"recent_matches":[]} garbage`,
		"second object":    `{"recent_matches":[]} {"recent_matches":[]}`,
		"truncated":        `{"team_banner_url":"x","recent_matches":[`,
	}
	for name, body := range cases {
		body := body
		t.Run(name, func(t *testing.T) {
			rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, body), nil
			})
			client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

			_, err := client.FetchTeamMatches(context.Background(), "KKR")
			if _, ok := providers.AsDecodeError(err); !ok {
				t.Fatalf("expected DecodeError, got %v", err)
			}
		})
	}
}

func TestFetchTeamMatchesWrapsTransportErrors(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchTeamMatches(context.Background(), "RR")
	if _, ok := providers.AsNetworkError(err); !ok {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if providers.KindOf(err) != matches.FailureNetwork {
		t.Fatalf("expected network kind, got %s", providers.KindOf(err))
	}
}

func TestFetchTeamMatchesCanceledContext(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		<-req.Context().Done()
		return nil, req.Context().Err()
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchTeamMatches(ctx, "CSK")
	if providers.KindOf(err) != matches.FailureCanceled {
		t.Fatalf("expected canceled kind, got %v", err)
	}
}

func TestFetchTeamMatchesAcceptsTrailingWhitespace(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"recent_matches":[]}`+"\n\n"), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	view, err := client.FetchTeamMatches(context.Background(), "DC")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if view.RecentMatches == nil || len(view.RecentMatches) != 0 {
		t.Fatalf("expected empty recent matches, got %+v", view.RecentMatches)
	}
}

func TestFetchTeamMatchesRejectsOversizedBody(t *testing.T) {
	body := `{"team_banner_url":"` + strings.Repeat("x", maxBodyBytes) + `","recent_matches":[]}`
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, body), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchTeamMatches(context.Background(), "MI")
	if _, ok := providers.AsDecodeError(err); !ok {
		t.Fatalf("expected DecodeError for oversized body, got %v", err)
	}
}

func TestFetchTeamMatchesBodyReadTimeoutIsNetworkError(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{"team_banner_url":"x","recent_matches":[`)
		w.(http.Flusher).Flush()
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := NewClient(Config{BaseURL: srv.URL, Timeout: 100 * time.Millisecond})

	_, err := client.FetchTeamMatches(context.Background(), "KXP")
	if _, ok := providers.AsNetworkError(err); !ok {
		t.Fatalf("expected NetworkError for stalled body, got %T %v", err, err)
	}
	if _, ok := providers.AsDecodeError(err); ok {
		t.Fatalf("stalled body must not be classified as decode failure")
	}
	if providers.KindOf(err) != matches.FailureNetwork {
		t.Fatalf("expected network kind, got %s", providers.KindOf(err))
	}
}

func TestIsReadTimeout(t *testing.T) {
	if !isReadTimeout(fmt.Errorf("read: %w", context.DeadlineExceeded)) {
		t.Fatalf("expected deadline to count as timeout")
	}
	if !isReadTimeout(&net.OpError{Op: "read", Err: timeoutErr{}}) {
		t.Fatalf("expected net timeout to count as timeout")
	}
	if isReadTimeout(errors.New("invalid character")) {
		t.Fatalf("expected syntax error not to count as timeout")
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return false }

func TestNewClientSetsDefaultHTTPClient(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout, got %s", httpClient.Timeout)
	}
	if c.baseURL != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", c.baseURL)
	}
}

func TestNewClientHonorsTimeout(t *testing.T) {
	c := NewClient(Config{Timeout: 3 * time.Second})
	if c.httpClient.(*http.Client).Timeout != 3*time.Second {
		t.Fatalf("expected configured timeout")
	}
}

func jsonResponse(status int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     header,
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
