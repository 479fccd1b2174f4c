package utils

import "time"

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixAuto converts an epoch value of unknown unit (seconds, millis,
// micros or nanos) to a time.Time. Stored data mixes units, so detect by
// magnitude rather than trusting the writer.
func FromUnixAuto(x int64) time.Time {
	if x <= 0 {
		return time.Time{}
	}
	switch {
	case x < 1e11: // seconds
		return time.Unix(x, 0)
	case x < 1e14: // milliseconds
		return time.Unix(x/1e3, (x%1e3)*1e6)
	case x < 1e17: // microseconds
		return time.Unix(x/1e6, (x%1e6)*1e3)
	default: // nanoseconds
		return time.Unix(x/1e9, x%1e9)
	}
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
