package contacts

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Layouts tried in order when bucketing a timestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	dateLayout,
}

// DateKey returns the calendar date of an ISO-8601 date or datetime, in the
// timestamp's own offset. Values no layout accepts fall back to the text
// before the first "T", which is what the backend's date strings reduce to.
// ok is false for empty values.
func DateKey(s string) (key string, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout), true
		}
	}

	before, _, _ := strings.Cut(s, "T")
	if before == "" {
		return "", false
	}
	return before, true
}
