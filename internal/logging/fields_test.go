package logging

import (
	"log/slog"
	"testing"
)

func TestWithCommonAppendsServiceAndVersion(t *testing.T) {
	attrs := WithCommon(nil, "ipl-matches-service", "1.0.0")
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != FieldService || attrs[0].Value.String() != "ipl-matches-service" {
		t.Fatalf("expected service attr, got %+v", attrs[0])
	}
	if attrs[1].Key != FieldVersion || attrs[1].Value.String() != "1.0.0" {
		t.Fatalf("expected version attr, got %+v", attrs[1])
	}
}

func TestWithCommonSkipsEmpty(t *testing.T) {
	attrs := WithCommon([]slog.Attr{slog.String(FieldTeamID, "RCB")}, "", "")
	if len(attrs) != 1 || attrs[0].Key != FieldTeamID {
		t.Fatalf("expected original attrs preserved, got %+v", attrs)
	}
}

func TestWithCommonKeepsServiceWithoutVersion(t *testing.T) {
	attrs := WithCommon(nil, "ipl-matches-service", "")
	if len(attrs) != 1 || attrs[0].Key != FieldService {
		t.Fatalf("expected only service attr, got %+v", attrs)
	}
}
