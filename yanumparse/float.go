package yanumparse

import (
	"math"

	"github.com/YaCodeDev/GoYaNumParse/yaerrors"
)

// TryParseFloat parses s as a float32 using the invariant grammar.
// Literals beyond the float32 range are reported as failures.
func TryParseFloat(s *string) (float32, bool) {
	if s == nil {
		return 0, false
	}

	value, failed := parseFloat(*s, bitSize32)
	if failed != noFailure {
		return 0, false
	}

	return float32(value), true
}

// ParseFloat parses s as a float32 using the invariant grammar.
// Blank and malformed input yield NaN. Out-of-range literals are not intercepted and
// come back saturated to +Inf or -Inf. Only nil input is an error.
func ParseFloat(s *string) (float32, yaerrors.Error) {
	if s == nil {
		return 0, nilInputError("parse float")
	}

	value, failed := parseFloat(*s, bitSize32)

	switch failed {
	case noFailure, failTooLarge, failTooSmall:
		return float32(value), nil
	case failEmpty, failFormat:
		return float32(math.NaN()), nil
	}

	return float32(math.NaN()), nil
}

// TryParseDouble parses s as a float64 using the invariant grammar.
func TryParseDouble(s *string) (float64, bool) {
	if s == nil {
		return 0, false
	}

	value, failed := parseFloat(*s, bitSize64)
	if failed != noFailure {
		return 0, false
	}

	return value, true
}

// ParseDouble parses s as a float64 using the invariant grammar.
// Every failure, overflow included, yields DoubleInvalidSentinel
// (math.SmallestNonzeroFloat64) rather than zero. Only nil input is an error.
func ParseDouble(s *string) (float64, yaerrors.Error) {
	if s == nil {
		return 0, nilInputError("parse double")
	}

	value, failed := parseFloat(*s, bitSize64)
	if failed != noFailure {
		return DoubleInvalidSentinel, nil
	}

	return value, nil
}
