package reconcile

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when coercing a string into a timestamp.
// Covers RFC 3339 (Supabase JSON), Postgres text timestamps and bare dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// coerceDate converts an arbitrary remote value into a timestamp. If the
// value cannot be interpreted as a point in time, the fallback is returned.
// This is the single enforcement point for the "never crash on bad remote
// dates" policy; it must not error or panic for any input.
func (p *Parser) coerceDate(v any, fallback time.Time) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case *time.Time:
		if val != nil {
			return *val
		}
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			break
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	case json.Number:
		if ms, err := val.Float64(); err == nil {
			return epochMillis(ms)
		}
	case float64:
		if !math.IsNaN(val) && !math.IsInf(val, 0) {
			return epochMillis(val)
		}
	case int:
		return epochMillis(float64(val))
	case int64:
		return epochMillis(float64(val))
	}
	return fallback
}

// epochMillis interprets a numeric remote value as Unix epoch milliseconds,
// the representation JavaScript clients write for dates.
func epochMillis(ms float64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}

// coerceFloat converts a remote value into a finite float64. NaN and ±Inf
// are rejected, not merely falsy values: a legitimate 0 must survive as 0.
func coerceFloat(v any) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int32:
		f = float64(val)
	case int64:
		f = float64(val)
	case uint:
		f = float64(val)
	case uint64:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// coerceID parses an identity field. Identity is the only load-bearing
// field on a remote row: storage keys and receipt links depend on it, so a
// row whose id does not coerce to a finite number is meaningless.
func coerceID(v any) (int64, bool) {
	f, ok := coerceFloat(v)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// floatOr coerces a numeric field, substituting def when the value is
// missing or not a finite number.
func floatOr(v any, def float64) float64 {
	if f, ok := coerceFloat(v); ok {
		return f
	}
	return def
}

// stringOr returns the value when it is a non-blank string, def otherwise.
func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return def
}

// optString returns a pointer to the value when it is a non-blank string.
// Optional attributes are attached only when present and valid, so absent
// and blank collapse to nil rather than an empty marker on the entity.
func optString(v any) *string {
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		return &s
	}
	return nil
}
