package domain

import (
	"testing"
	"time"
)

func TestTimestampIsUTCMillis(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	got := Timestamp(time.Date(2025, 1, 2, 10, 4, 5, 123456789, loc))
	if got != "2025-01-02T03:04:05.123Z" {
		t.Fatalf("Timestamp() = %q", got)
	}
}
