package yanumparse

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// failure is the outcome category of a conversion attempt.
type failure uint8

const (
	noFailure failure = iota
	failEmpty
	failFormat
	failTooLarge
	failTooSmall
)

// Text returns a pointer to s, the non-nil input every parser in this package accepts.
//
// Example usage:
//
//	value, ok := yanumparse.TryParseInteger(yanumparse.Text("123"))
func Text(s string) *string {
	return &s
}

// trim strips surrounding ASCII whitespace. Unicode spaces such as NBSP stay and fail the grammar.
func trim(s string) string {
	return strings.Trim(s, asciiSpace)
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func isZeros(s string) bool {
	return strings.Trim(s, "0") == ""
}

// rangeFailure maps a strconv range error to the overflow direction.
// strconv clamps to the nearest bound, so the sign of the clamped value tells which.
func rangeFailure(err error, positive bool) failure {
	if !errors.Is(err, strconv.ErrRange) {
		return failFormat
	}

	if positive {
		return failTooLarge
	}

	return failTooSmall
}

// parseSigned parses s as a base-10 integer that fits into bitSize bits.
func parseSigned[T constraints.Signed](s string, bitSize int) (T, failure) {
	trimmed := trim(s)
	if trimmed == "" {
		return 0, failEmpty
	}

	value, err := strconv.ParseInt(trimmed, decimalBase, bitSize)
	if err != nil {
		return 0, rangeFailure(err, value > 0)
	}

	return T(value), noFailure
}

// parseUnsigned parses s as a base-10 unsigned integer that fits into bitSize bits.
// A leading '+' is accepted. A leading '-' followed by digits is reported as failTooSmall,
// unless the magnitude is zero and allowNegativeZero is set.
func parseUnsigned[T constraints.Unsigned](s string, bitSize int, allowNegativeZero bool) (T, failure) {
	trimmed := trim(s)
	if trimmed == "" {
		return 0, failEmpty
	}

	if magnitude, negative := strings.CutPrefix(trimmed, "-"); negative {
		if !isDigits(magnitude) {
			return 0, failFormat
		}

		if allowNegativeZero && isZeros(magnitude) {
			return 0, noFailure
		}

		return 0, failTooSmall
	}

	trimmed = strings.TrimPrefix(trimmed, "+")
	if !isDigits(trimmed) {
		return 0, failFormat
	}

	value, err := strconv.ParseUint(trimmed, decimalBase, bitSize)
	if err != nil {
		return 0, rangeFailure(err, true)
	}

	return T(value), noFailure
}

// parseFloat parses s with the invariant float grammar. On overflow the saturated
// infinity is returned along with the failure.
func parseFloat(s string, bitSize int) (float64, failure) {
	trimmed := trim(s)
	if trimmed == "" {
		return 0, failEmpty
	}

	if value, ok := parseFloatSymbol(trimmed); ok {
		return value, noFailure
	}

	if !floatPattern.MatchString(trimmed) {
		return 0, failFormat
	}

	value, err := strconv.ParseFloat(trimmed, bitSize)
	if err != nil {
		// Gradual underflow rounds towards zero and is not an overflow.
		if errors.Is(err, strconv.ErrRange) && !math.IsInf(value, 0) {
			return value, noFailure
		}

		return value, rangeFailure(err, value > 0)
	}

	return value, noFailure
}

// parseFloatSymbol recognises the invariant infinity and NaN symbols.
func parseFloatSymbol(s string) (float64, bool) {
	sign := 1
	body := s

	switch {
	case strings.HasPrefix(body, "-"):
		sign = -1
		body = body[1:]
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}

	switch {
	case strings.EqualFold(body, "infinity"), body == "∞":
		return math.Inf(sign), true
	case strings.EqualFold(body, "nan"):
		return math.NaN(), true
	default:
		return 0, false
	}
}
