package timezone

import (
	"testing"
	"time"
)

func TestLocation_Fallback(t *testing.T) {
	if Location("").String() != "UTC" {
		t.Error("empty tz should fall back to UTC")
	}
	if Location("Not/AZone").String() != "UTC" {
		t.Error("unknown tz should fall back to UTC")
	}
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	now := time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC)

	if got := Today(loc, now).String(); got != "2026-10-18" {
		t.Errorf("expected shop date 2026-10-18, got %s", got)
	}
	if got := Today(time.UTC, now).String(); got != "2026-10-19" {
		t.Errorf("got %s", got)
	}
}
