package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// Ptr returns a pointer to v. Used to build RosterEntry values with optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// IntValue reads an integer out of a decoded JSON value. Save documents are decoded
// with UseNumber, so json.Number is the common case; float64 and plain ints appear
// in values written by this program or by tests.
func IntValue(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		if f, err := n.Float64(); err == nil && f == math.Trunc(f) {
			return int(f), true
		}
		return 0, false
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// StringValue renders scalars as text the way a loose JSON reader would.
func StringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	case int:
		return strconv.Itoa(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// deepCopy clones maps and slices of a decoded JSON tree. Scalars are immutable and shared.
func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopy(val)
		}
		return out
	case Player:
		return map[string]any(t.Clone())
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = deepCopy(val)
		}
		return out
	case AttributePair:
		return t
	default:
		return v
	}
}
