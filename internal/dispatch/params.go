package dispatch

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Params is the loosely-typed parameter bag an operation is invoked with.
// Callers hand over whatever the conversational layer extracted; the
// accessors normalize common encodings (JSON numbers arrive as float64,
// lists sometimes arrive comma-joined).
type Params map[string]any

// Has reports whether the key is present with a usable value. Empty
// strings count as absent.
func (p Params) Has(key string) bool {
	v, ok := p[key]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// String returns the value as a trimmed string, or "" when absent.
func (p Params) String(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// Int returns the value as an int, or def when absent or unparsable.
func (p Params) Int(key string, def int) int {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return parsed
		}
	}
	return def
}

// Bool returns the value as a bool, or def when absent or unparsable.
func (p Params) Bool(key string, def bool) bool {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
			return parsed
		}
	}
	return def
}

// paramTimeLayouts are accepted, most specific first.
var paramTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// Time parses the value as a timestamp or calendar date.
func (p Params) Time(key string) (time.Time, bool) {
	s := p.String(key)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range paramTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StringSlice returns the value as a list of strings. Scalar strings are
// split on commas.
func (p Params) StringSlice(key string) []string {
	v, ok := p[key]
	if !ok || v == nil {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s := strings.TrimSpace(fmt.Sprintf("%v", item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		var out []string
		for _, part := range strings.Split(list, ",") {
			if s := strings.TrimSpace(part); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
