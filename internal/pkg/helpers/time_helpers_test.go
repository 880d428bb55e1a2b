package helpers

import (
	"testing"
	"time"
)

func TestParseISOAcceptsRFC3339(t *testing.T) {
	parsed, ok := ParseISO("2026-03-01T10:30:00Z")
	if !ok {
		t.Fatal("expected RFC3339 timestamp to parse")
	}
	if parsed.Hour() != 10 || parsed.Minute() != 30 {
		t.Fatalf("unexpected time: %v", parsed)
	}
}

func TestParseISOAcceptsNaiveTimestamp(t *testing.T) {
	if _, ok := ParseISO("2026-03-01T10:30:00"); !ok {
		t.Fatal("expected timestamp without zone to parse")
	}
}

func TestParseISORejectsGarbage(t *testing.T) {
	for _, value := range []string{"", "not a date", "tomorrow"} {
		if _, ok := ParseISO(value); ok {
			t.Fatalf("expected %q to fail parsing", value)
		}
	}
}

func TestNowISORoundTrips(t *testing.T) {
	now := NowISO()
	parsed, ok := ParseISO(now)
	if !ok {
		t.Fatalf("NowISO output did not parse: %q", now)
	}
	if time.Since(parsed) > time.Minute {
		t.Fatalf("NowISO drifted: %q", now)
	}
}

func TestParseDurationFallback(t *testing.T) {
	if got := ParseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Fatalf("expected 90m, got %v", got)
	}
	if got := ParseDuration("bogus", time.Hour); got != time.Hour {
		t.Fatalf("expected fallback, got %v", got)
	}
}
