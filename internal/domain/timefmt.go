package domain

import "time"

// DateTimeLayout is the persisted form of content timestamps.
const DateTimeLayout = time.RFC3339Nano

// DateLayout is the template form of content dates.
const DateLayout = "2006-01-02"

// FormatUTC renders t in UTC using layout, or "" for the zero time.
func FormatUTC(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(layout)
}

// ParseUTC parses s with layout as a UTC time. An empty string yields the
// zero time.
func ParseUTC(s, layout string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
