package models

import (
	"strings"
	"time"
)

// TimeLayout is the timestamp layout used by the hosted backend.
const TimeLayout = "2006-01-02 15:04:05.000Z"

// Timestamp wraps time.Time with JSON marshaling that understands the
// backend's layout as well as RFC 3339. An empty or missing value decodes
// to the zero time rather than an error.
type Timestamp struct {
	time.Time
}

// NewTimestamp returns a Timestamp for the given time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// UnmarshalJSON decodes a backend timestamp string.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{TimeLayout, time.RFC3339Nano, time.RFC3339} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return &time.ParseError{Layout: TimeLayout, Value: s, LayoutElem: TimeLayout, ValueElem: s}
}

// MarshalJSON encodes the timestamp in the backend's layout.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.UTC().Format(TimeLayout) + `"`), nil
}
