package server

import (
	"context"
	"testing"

	"github.com/preston-bernstein/ipl-matches-service/internal/config"
	"github.com/preston-bernstein/ipl-matches-service/internal/testutil"
)

func TestProviderFactoryBuildsFixture(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	prov := factory.build(config.Config{Provider: "fixture"})
	if prov == nil {
		t.Fatalf("expected provider")
	}
	view, err := prov.FetchTeamMatches(context.Background(), "RCB")
	if err != nil {
		t.Fatalf("expected fixture data, got %v", err)
	}
	if view.TeamBannerURL == "" {
		t.Fatalf("expected banner url from fixture")
	}
}

func TestProviderFactoryWrapRecordsAttempts(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	factory := newProviderFactory(nil, rec)
	prov := factory.wrap(config.Config{Provider: "Fixture"}, testutil.GoodProvider{})

	if _, err := prov.FetchTeamMatches(context.Background(), "KKR"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.ProviderCalls("fixture"); got != 1 {
		t.Fatalf("expected one recorded call under lower-cased name, got %d", got)
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("CCBP", nil); got != "ccbp" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected default name, got %s", got)
	}
	if got := normalizeProviderName("", testutil.GoodProvider{}); got != "testutil.goodprovider" {
		t.Fatalf("expected derived name, got %s", got)
	}
}
