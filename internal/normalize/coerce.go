// Package normalize converts the heterogeneously shaped records accumulated
// in storage into the canonical view types. Every function here is pure and
// total: unknown shapes degrade to a safe default, they never error.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"tripmate/internal/models/db_models"
	"tripmate/pkg/utils"
)

// firstString returns the first non-empty string found under the given keys.
func firstString(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

// firstNumber coerces the first usable value under the given keys to a
// float64. Strings are parsed; anything else yields the fallback.
func firstNumber(m map[string]interface{}, fallback float64, keys ...string) float64 {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case float32:
			return float64(n)
		case int:
			return float64(n)
		case int64:
			return float64(n)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f
			}
		}
	}
	return fallback
}

// positiveInt coerces v to a positive integer, defaulting when missing or
// invalid. Day numbers arrive as float64 (JSON), int, or numeric strings.
func positiveInt(v interface{}, fallback int) int {
	switch n := v.(type) {
	case float64:
		if n >= 1 {
			return int(n)
		}
	case int:
		if n >= 1 {
			return n
		}
	case int64:
		if n >= 1 {
			return int(n)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil && i >= 1 {
			return i
		}
	}
	return fallback
}

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func asList(v interface{}) []map[string]interface{} {
	raw, ok := v.([]interface{})
	if !ok {
		// already-decoded lists of maps show up when a normalized structure
		// is normalized again
		if l, ok := v.([]map[string]interface{}); ok {
			return l
		}
		return nil
	}
	out := make([]map[string]interface{}, 0, len(raw))
	for _, e := range raw {
		if m, ok := e.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// coerceTimestamp accepts a provider-native timestamp object (seconds/nanos
// pair), an ISO string, or an epoch number, and renders RFC3339. A value it
// cannot read becomes `now` — an accepted approximation, the record itself
// still renders.
func coerceTimestamp(v interface{}, now time.Time) string {
	switch t := v.(type) {
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return utils.FormatRFC3339(parsed)
		}
		if parsed, err := time.Parse("2006-01-02", t); err == nil {
			return utils.FormatRFC3339(parsed)
		}
	case float64:
		if ts := utils.FromUnixAuto(int64(t)); !ts.IsZero() {
			return utils.FormatRFC3339(ts)
		}
	case int64:
		if ts := utils.FromUnixAuto(t); !ts.IsZero() {
			return utils.FormatRFC3339(ts)
		}
	case time.Time:
		if !t.IsZero() {
			return utils.FormatRFC3339(t)
		}
	case map[string]interface{}:
		// Firestore-style {seconds,nanoseconds} or {_seconds,_nanoseconds}
		secs := firstNumber(t, 0, "seconds", "_seconds")
		if secs > 0 {
			return utils.FormatRFC3339(time.Unix(int64(secs), 0))
		}
	}
	return utils.FormatRFC3339(now)
}

// coerceReactions reads a stored reaction list in either the canonical
// struct shape or a decoded map shape.
func coerceReactions(v interface{}) []db_models.Reaction {
	if rs, ok := v.([]db_models.Reaction); ok {
		return rs
	}
	out := []db_models.Reaction{}
	for _, m := range asList(v) {
		r := db_models.Reaction{
			UserID:   firstString(m, "userId", "uid", "user_id"),
			UserName: firstString(m, "userName", "name", "user_name"),
			Type:     firstString(m, "type", "reaction"),
		}
		if r.Type == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}
