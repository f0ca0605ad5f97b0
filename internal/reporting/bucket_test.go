package reporting

import (
	"errors"
	"testing"
	"time"
)

func TestParseGranularity(t *testing.T) {
	cases := []struct {
		raw  string
		want Granularity
	}{
		{"", Daily},
		{"daily", Daily},
		{"weekly", Weekly},
		{"monthly", Monthly},
	}
	for _, c := range cases {
		got, err := ParseGranularity(c.raw)
		if err != nil {
			t.Fatalf("ParseGranularity(%q): %v", c.raw, err)
		}
		if got != c.want {
			t.Fatalf("ParseGranularity(%q) = %q, want %q", c.raw, got, c.want)
		}
	}

	if _, err := ParseGranularity("hourly"); !errors.Is(err, ErrInvalidGranularity) {
		t.Fatalf("expected ErrInvalidGranularity, got %v", err)
	}
}

func TestBucketKeyDaily(t *testing.T) {
	ts := time.Date(2024, 3, 15, 18, 45, 0, 0, time.UTC)
	key, ok := BucketKey(ts, Daily)
	if !ok || key != "2024-03-15" {
		t.Fatalf("daily key = %q, ok=%v", key, ok)
	}
}

func TestBucketKeyWeeklySnapsToSunday(t *testing.T) {
	// 2024-03-15 is a Friday; its week starts Sunday 2024-03-10.
	friday := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	key, ok := BucketKey(friday, Weekly)
	if !ok || key != "2024-03-10" {
		t.Fatalf("weekly key = %q, ok=%v, want 2024-03-10", key, ok)
	}

	// A Sunday is its own bucket.
	sunday := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	key, ok = BucketKey(sunday, Weekly)
	if !ok || key != "2024-03-10" {
		t.Fatalf("sunday weekly key = %q, ok=%v, want 2024-03-10", key, ok)
	}
}

func TestBucketKeyMonthly(t *testing.T) {
	ts := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	key, ok := BucketKey(ts, Monthly)
	if !ok || key != "2024-01" {
		t.Fatalf("monthly key = %q, ok=%v", key, ok)
	}
}

func TestBucketKeyZeroTime(t *testing.T) {
	for _, g := range []Granularity{Daily, Weekly, Monthly} {
		if key, ok := BucketKey(time.Time{}, g); ok {
			t.Fatalf("zero time bucketed at %s as %q", g, key)
		}
	}
}
