package style

import (
	"fmt"
	"strconv"
	"strings"
)

// ToBool coerces a style value to a boolean. 0, "0", "false" and false are
// false; 1, "1", "true" and true are true. Other numbers are true when
// non-zero, other strings when non-empty, and nil is false.
func ToBool(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "0", "false":
			return false
		case "1", "true":
			return true
		}
		return t != ""
	}
	if n, ok := ToNumber(v); ok {
		return n != 0
	}
	return true
}

// ToNumber coerces a style value to a float64. Strings are parsed; the
// second result is false when v is not numeric.
func ToNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// toString formats a style value the way it appears in a style string.
func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "1"
		}
		return "0"
	}
	return fmt.Sprint(v)
}
