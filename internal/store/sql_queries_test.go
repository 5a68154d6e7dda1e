package store

import (
	"strings"
	"testing"
	"time"
)

func TestBuildUserStatsQuery(t *testing.T) {
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildUserStatsQuery(since)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "FROM users") {
		t.Errorf("expected query to target users table, got: %s", query)
	}
	if !strings.Contains(query, "FILTER (WHERE is_active)") {
		t.Errorf("expected active-users filter, got: %s", query)
	}
	// squirrel numbers the placeholder for the cutoff argument
	if !strings.Contains(query, "$1") {
		t.Errorf("expected dollar placeholder, got: %s", query)
	}

	if len(args) != 1 {
		t.Fatalf("expected one argument, got %d", len(args))
	}
	if got, ok := args[0].(time.Time); !ok || !got.Equal(since) {
		t.Errorf("expected cutoff argument %v, got %v", since, args[0])
	}
}
