package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayouts are the forms the backend has been seen to emit: RFC 3339
// and zone-less local date-times from Java LocalDateTime.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
}

// Timestamp is a time.Time that decodes the backend's date-time strings.
// A missing, null or empty value decodes to the zero time.
type Timestamp struct {
	time.Time
}

func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Timestamp{t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// UnmarshalJSON accepts any of the known string forms or epoch milliseconds.
// Anything else decodes to the zero time rather than failing the record, so
// one malformed date only blanks that date.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	*t = Timestamp{}

	var ms int64
	if err := json.Unmarshal(data, &ms); err == nil {
		*t = Timestamp{time.UnixMilli(ms).In(time.Local)}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil || s == "" {
		return nil
	}
	if parsed, err := ParseTimestamp(s); err == nil {
		*t = parsed
	}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.Format("2006-01-02T15:04:05"))
}

// Dotted renders the date as YYYY.MM.DD, or "" for the zero time.
func (t Timestamp) Dotted() string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006.01.02")
}

// Dashed renders the date as YYYY-MM-DD, or "" for the zero time.
func (t Timestamp) Dashed() string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
