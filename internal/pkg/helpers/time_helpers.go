package helpers

import "time"

// NowISO returns the current UTC time as an ISO-8601 (RFC 3339) string.
// All persisted timestamps use this format.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ParseISO parses a persisted timestamp. The second return value is false for
// malformed or empty timestamps; read paths treat those as "unknown" instead of
// failing.
func ParseISO(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		// Tolerate timestamps written without a zone offset.
		t, err = time.Parse("2006-01-02T15:04:05", value)
		if err != nil {
			return time.Time{}, false
		}
	}
	return t, true
}

// ParseDuration parses a duration string, falling back to a default on error
func ParseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
