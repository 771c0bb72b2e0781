// Package fixedarray: explicit, fallible value coercion.
// The typed variants (IntArray, FloatArray, CharArray) funnel every write
// through one of these converters. Each converter returns a typed result
// or an error wrapping the matching sentinel — no panics, no silent
// truncation of strings, no reflection.

package fixedarray

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// ToInt32 converts v to a 32-bit signed integer.
// Accepted inputs: any Go integer kind, float32/float64 (truncated toward
// zero, as integer conversion does), and decimal integer strings.
// Everything else fails with a wrapped ErrCoercion.
// Numeric inputs outside int32 range wrap to 32 bits, exactly as Go's
// integer conversion does; string inputs are range-checked by ParseInt
// and fail instead of wrapping.
// Complexity: O(1) (O(len) for strings).
func ToInt32(v any) (int32, error) {
	switch x := v.(type) {
	case int:
		return int32(x), nil
	case int8:
		return int32(x), nil
	case int16:
		return int32(x), nil
	case int32:
		return x, nil
	case int64:
		return int32(x), nil
	case uint:
		return int32(x), nil
	case uint8:
		return int32(x), nil
	case uint16:
		return int32(x), nil
	case uint32:
		return int32(x), nil
	case uint64:
		return int32(x), nil
	case float32:
		return int32(x), nil
	case float64:
		return int32(x), nil
	case string:
		n, err := strconv.ParseInt(x, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("value must be an Integer: %w", ErrCoercion)
		}
		return int32(n), nil
	default:
		return 0, fmt.Errorf("value must be an Integer: %w", ErrCoercion)
	}
}

// ToFloat64 converts v to a double-precision float.
// Accepted inputs: any Go numeric kind and strings strconv.ParseFloat
// accepts. Everything else fails with a wrapped ErrCoercion.
// Complexity: O(1) (O(len) for strings).
func ToFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("value must be a Decimal Number: %w", ErrCoercion)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("value must be a Decimal Number: %w", ErrCoercion)
	}
}

// ToChar converts v to a single-character string.
// Accepted inputs: a string holding exactly one rune, a bare rune, or a
// byte. Everything else fails with a wrapped ErrTypeMismatch.
// Complexity: O(1).
func ToChar(v any) (string, error) {
	switch x := v.(type) {
	case string:
		if utf8.RuneCountInString(x) != 1 {
			return "", fmt.Errorf("value should be single Character: %w", ErrTypeMismatch)
		}
		return x, nil
	case rune:
		return string(x), nil
	case byte:
		return string(rune(x)), nil
	default:
		return "", fmt.Errorf("value should be single Character: %w", ErrTypeMismatch)
	}
}
