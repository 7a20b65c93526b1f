package model

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"time"
)

// timestampLayouts are tried in order. Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

var timeType = reflect.TypeOf(time.Time{})

// ParseTimestamp accepts RFC 3339, ISO 8601 without a zone, and bare dates.
// The result is always UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// decodeTimestamp reads a JSON timestamp for field. An absent or null value
// yields nil. Failures are reported as *json.UnmarshalTypeError naming field.
func decodeTimestamp(raw json.RawMessage, field string) (*time.Time, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, &json.UnmarshalTypeError{Value: "non-string", Type: timeType, Field: field}
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return nil, &json.UnmarshalTypeError{Value: "string " + s, Type: timeType, Field: field}
	}
	return &t, nil
}
