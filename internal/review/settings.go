package review

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Settings is the opaque per-rule configuration payload. Values arrive
// from YAML guideline files or JSON blobs, so numbers may be int,
// float64, json.Number, or even strings. Lookups are tolerant: a
// missing or malformed value degrades to the caller's default rather
// than failing the rule.
type Settings map[string]any

// Int returns the first of keys that decodes as an integer, or def.
// Key order matters: callers list preferred keys before legacy ones.
func (s Settings) Int(def int, keys ...string) int {
	for _, key := range keys {
		v, ok := s.lookup(key)
		if !ok {
			continue
		}
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		case json.Number:
			if i, err := n.Int64(); err == nil {
				return int(i)
			}
		case string:
			if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
				return i
			}
		}
	}
	return def
}

// Float returns the first of keys that decodes as a number, or def.
func (s Settings) Float(def float64, keys ...string) float64 {
	for _, key := range keys {
		v, ok := s.lookup(key)
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case int64:
			return float64(n)
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return f
			}
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f
			}
		}
	}
	return def
}

// String returns the first of keys that holds a non-empty string, or def.
func (s Settings) String(def string, keys ...string) string {
	for _, key := range keys {
		v, ok := s.lookup(key)
		if !ok {
			continue
		}
		if str, ok := v.(string); ok && strings.TrimSpace(str) != "" {
			return str
		}
	}
	return def
}

// Bool returns the first of keys that decodes as a bool, or def.
func (s Settings) Bool(def bool, keys ...string) bool {
	for _, key := range keys {
		v, ok := s.lookup(key)
		if !ok {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b
		case string:
			if parsed, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
				return parsed
			}
		}
	}
	return def
}

// lookup is case-insensitive on key names so that camelCase payloads
// from other tooling still resolve.
func (s Settings) lookup(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	if v, ok := s[key]; ok {
		return v, true
	}
	for k, v := range s {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}
