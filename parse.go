package ezmenulib

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseFunc turns one raw input line into a typed value. A returned error
// marks the line as invalid input, which makes the prompt retry; it is never
// surfaced to the caller.
type ParseFunc[T any] func(string) (T, error)

// parseValue is the default parser used by the prompting operations. It
// covers strings, booleans (accepting human answers, see parseBool), the
// integer and float types, time.Duration, and any type whose pointer
// implements encoding.TextUnmarshaler.
func parseValue[T any](s string) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *string:
		*p = s
	case *bool:
		*p, err = parseBool(s)
	case *int:
		*p, err = strconv.Atoi(s)
	case *int8:
		var n int64
		n, err = strconv.ParseInt(s, 10, 8)
		*p = int8(n)
	case *int16:
		var n int64
		n, err = strconv.ParseInt(s, 10, 16)
		*p = int16(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(s, 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 64)
		*p = uint(n)
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 8)
		*p = uint8(n)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 16)
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(s, 10, 64)
	case *float32:
		var x float64
		x, err = strconv.ParseFloat(s, 32)
		*p = float32(x)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	case *time.Duration:
		*p, err = time.ParseDuration(s)
	case encoding.TextUnmarshaler:
		err = p.UnmarshalText([]byte(s))
	default:
		err = fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	return v, err
}

// parseBool interprets human yes/no answers, not just strconv's "true" and
// "false". Matching is case-insensitive.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "y", "ye", "yes", "yep", "yeah", "yup", "true", "1":
		return true, nil
	case "n", "no", "non", "nope", "nah", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("cannot interpret %q as a yes/no answer", s)
}

// parseIndex interprets a line as a 1-based choice index and reports whether
// it falls inside [1, n]. The returned index is 0-based.
func parseIndex(line string, n int) (int, bool) {
	i, err := strconv.Atoi(line)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}
