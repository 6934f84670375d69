package models

import (
	"time"

	"github.com/Himon-SYNCRAFT/taskplus-api/internal/validation"
)

// timeLayout is the ISO-8601 microsecond form used for every serialized
// timestamp, matching what the date filter primitives parse.
const timeLayout = "2006-01-02T15:04:05.000000"

// requireFields reports the first missing required field, in declaration
// order, as a validation error.
func requireFields(fields map[string]any, names ...string) error {
	for _, name := range names {
		if _, ok := fields[name]; !ok {
			return &validation.Error{Field: name, Message: "required key not provided"}
		}
	}
	return nil
}

func stringField(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func intField(fields map[string]any, key string) (uint, bool) {
	v, ok := fields[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		if n < 0 {
			return 0, false
		}
		return uint(n), true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint(n), true
	case uint:
		return n, true
	case float64:
		if n < 0 {
			return 0, false
		}
		return uint(n), true
	}
	return 0, false
}

func boolField(fields map[string]any, key string) (bool, bool) {
	v, ok := fields[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func timeField(fields map[string]any, key string) (time.Time, bool) {
	v, ok := fields[key]
	if !ok {
		return time.Time{}, false
	}
	t, ok := v.(time.Time)
	return t, ok
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}
