package reporting

import (
	"errors"
	"time"
)

type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

var ErrInvalidGranularity = errors.New("invalid granularity")

// ParseGranularity accepts daily, weekly or monthly. An empty value defaults
// to daily, matching the dashboard's initial state.
func ParseGranularity(raw string) (Granularity, error) {
	switch raw {
	case "":
		return Daily, nil
	case string(Daily):
		return Daily, nil
	case string(Weekly):
		return Weekly, nil
	case string(Monthly):
		return Monthly, nil
	}
	return "", ErrInvalidGranularity
}

// BucketKey maps a timestamp to its bucket at the given granularity. Weekly
// buckets are keyed by the most recent Sunday on or before the timestamp, so
// weekly keys are full dates and sort like daily ones. The zero time is
// unbucketable and reports ok=false.
func BucketKey(t time.Time, g Granularity) (string, bool) {
	if t.IsZero() {
		return "", false
	}
	switch g {
	case Weekly:
		sunday := t.AddDate(0, 0, -int(t.Weekday()))
		return sunday.Format("2006-01-02"), true
	case Monthly:
		return t.Format("2006-01"), true
	default:
		return t.Format("2006-01-02"), true
	}
}

// bucketTime parses a key back into a point in time for chronological row
// ordering. String comparison would misorder nothing today, but actual date
// comparison keeps sorting correct across all granularities.
func bucketTime(key string, g Granularity) (time.Time, error) {
	if g == Monthly {
		return time.Parse("2006-01", key)
	}
	return time.Parse("2006-01-02", key)
}
