package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/preston-bernstein/ipl-matches-service/internal/domain/matches"
)

func TestHTTPStatusErrorString(t *testing.T) {
	err := &HTTPStatusError{Provider: "ccbp", StatusCode: 502, Body: "bad gateway"}
	if got := err.Error(); got != "ccbp: unexpected status 502: bad gateway" {
		t.Fatalf("unexpected error string %q", got)
	}

	noBody := &HTTPStatusError{Provider: "ccbp", StatusCode: 404}
	if got := noBody.Error(); got != "ccbp: unexpected status 404" {
		t.Fatalf("unexpected error string %q", got)
	}

	if noBody.RateLimited() {
		t.Fatalf("404 should not be rate limited")
	}
	if !(&HTTPStatusError{StatusCode: 429}).RateLimited() {
		t.Fatalf("429 should be rate limited")
	}
}

func TestAsHelpersUnwrap(t *testing.T) {
	statusErr := fmt.Errorf("fetch: %w", &HTTPStatusError{StatusCode: 500})
	if se, ok := AsHTTPStatusError(statusErr); !ok || se.StatusCode != 500 {
		t.Fatalf("expected to unwrap status error")
	}

	decodeErr := fmt.Errorf("fetch: %w", &DecodeError{Err: errors.New("bad json")})
	if _, ok := AsDecodeError(decodeErr); !ok {
		t.Fatalf("expected to unwrap decode error")
	}

	netErr := &NetworkError{Provider: "ccbp", Err: errors.New("refused")}
	if _, ok := AsNetworkError(netErr); !ok {
		t.Fatalf("expected to unwrap network error")
	}
	if !errors.Is(netErr, netErr.Err) {
		t.Fatalf("expected network error to unwrap to cause")
	}

	if _, ok := AsHTTPStatusError(errors.New("plain")); ok {
		t.Fatalf("plain error should not unwrap")
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want matches.FailureKind
	}{
		{"nil", nil, ""},
		{"canceled", &NetworkError{Err: context.Canceled}, matches.FailureCanceled},
		{"deadline", &NetworkError{Err: context.DeadlineExceeded}, matches.FailureNetwork},
		{"unavailable", ErrProviderUnavailable, matches.FailureUnavailable},
		{"decode", &DecodeError{Err: errors.New("x")}, matches.FailureDecode},
		{"status", &HTTPStatusError{StatusCode: 503}, matches.FailureHTTPStatus},
		{"network", &NetworkError{Err: errors.New("refused")}, matches.FailureNetwork},
		{"unknown", errors.New("boom"), matches.FailureNetwork},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestIsTimeout(t *testing.T) {
	if !IsTimeout(&NetworkError{Err: context.DeadlineExceeded}) {
		t.Fatalf("expected deadline to be a timeout")
	}
	if IsTimeout(errors.New("boom")) {
		t.Fatalf("plain error is not a timeout")
	}
}
