package yanumparse

import (
	"strconv"
	"strings"

	"github.com/YaCodeDev/GoYaNumParse/yaerrors"
)

// TryParseInteger parses s as a 32-bit signed integer.
// It returns false for nil, blank, malformed and out-of-range input.
//
// Example usage:
//
//	value, ok := TryParseInteger(Text("123")) // 123, true
//	value, ok = TryParseInteger(Text("abc"))  // 0, false
func TryParseInteger(s *string) (int32, bool) {
	if s == nil {
		return 0, false
	}

	value, failed := parseSigned[int32](*s, bitSize32)

	return value, failed == noFailure
}

// ParseInteger parses s as a 32-bit signed integer.
// Blank and malformed input yield 0, overflow in either direction yields
// IntegerOverflowSentinel (-1). Only nil input is an error.
func ParseInteger(s *string) (int32, yaerrors.Error) {
	if s == nil {
		return 0, nilInputError("parse integer")
	}

	value, failed := parseSigned[int32](*s, bitSize32)

	switch failed {
	case noFailure:
		return value, nil
	case failEmpty, failFormat:
		return 0, nil
	case failTooLarge, failTooSmall:
		return IntegerOverflowSentinel, nil
	}

	return 0, nil
}

// TryParseUnsignedInteger parses s as a 32-bit unsigned integer.
// Any leading '-' is rejected, "-0" included.
func TryParseUnsignedInteger(s *string) (uint32, bool) {
	if s == nil {
		return 0, false
	}

	value, failed := parseUnsigned[uint32](*s, bitSize32, false)

	return value, failed == noFailure
}

// ParseUnsignedInteger parses s as a 32-bit unsigned integer.
//
// The trimmed text is scanned before conversion: a leading '-' yields
// UnsignedIntegerOverflowSentinel (math.MaxUint32), any other non-digit character
// (signs, separators, exponents) yields UnsignedIntegerInvalidSentinel (0).
// Values above math.MaxUint32 yield math.MaxUint32. Only nil input is an error.
func ParseUnsignedInteger(s *string) (uint32, yaerrors.Error) {
	if s == nil {
		return 0, nilInputError("parse unsigned integer")
	}

	trimmed := trim(*s)

	switch {
	case trimmed == "":
		return UnsignedIntegerInvalidSentinel, nil
	case strings.HasPrefix(trimmed, "-"):
		return UnsignedIntegerOverflowSentinel, nil
	case !isDigits(trimmed):
		return UnsignedIntegerInvalidSentinel, nil
	}

	value, err := strconv.ParseUint(trimmed, decimalBase, bitSize32)
	if err != nil {
		return UnsignedIntegerOverflowSentinel, nil
	}

	return uint32(value), nil
}
