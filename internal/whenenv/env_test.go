package whenenv

import (
	"testing"
	"time"
)

func TestClockDefaultsToNow(t *testing.T) {
	t.Setenv(NowEnvVar, "")

	clock, err := Clock()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d := time.Since(clock()); d < 0 || d > time.Minute {
		t.Fatalf("expected the wall clock, got %v", clock())
	}
}

func TestClockUsesPinnedInstant(t *testing.T) {
	t.Setenv(NowEnvVar, "2026-10-14T10:00:00Z")

	clock, err := Clock()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)
	if got := clock(); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if clock().Location() != time.Local {
		t.Fatal("expected the pinned instant in local time")
	}
}

func TestClockRejectsGarbage(t *testing.T) {
	t.Setenv(NowEnvVar, "next tuesday")

	if _, err := Clock(); err == nil {
		t.Fatal("expected an error")
	}
}

func TestStorePath(t *testing.T) {
	t.Setenv(StoreEnvVar, "")
	if got := StorePath("/data/tasks.jsonl"); got != "/data/tasks.jsonl" {
		t.Fatalf("expected fallback, got %q", got)
	}

	t.Setenv(StoreEnvVar, "/tmp/other.db")
	if got := StorePath("/data/tasks.jsonl"); got != "/tmp/other.db" {
		t.Fatalf("expected override, got %q", got)
	}
}
