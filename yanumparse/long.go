package yanumparse

import "github.com/YaCodeDev/GoYaNumParse/yaerrors"

// TryParseLong parses s as a 64-bit signed integer.
func TryParseLong(s *string) (int64, bool) {
	if s == nil {
		return 0, false
	}

	value, failed := parseSigned[int64](*s, bitSize64)

	return value, failed == noFailure
}

// ParseLong parses s as a 64-bit signed integer.
//
// Blank and malformed input yield LongInvalidSentinel (math.MinInt64). Too large input
// yields LongOverflowSentinel (-1) while too negative input yields
// LongUnderflowSentinel (math.MinInt64). Only nil input is an error.
func ParseLong(s *string) (int64, yaerrors.Error) {
	if s == nil {
		return 0, nilInputError("parse long")
	}

	value, failed := parseSigned[int64](*s, bitSize64)

	switch failed {
	case noFailure:
		return value, nil
	case failEmpty, failFormat:
		return LongInvalidSentinel, nil
	case failTooLarge:
		return LongOverflowSentinel, nil
	case failTooSmall:
		return LongUnderflowSentinel, nil
	}

	return LongInvalidSentinel, nil
}

// TryParseUnsignedLong parses s as a 64-bit unsigned integer.
// Negative zero is accepted as 0.
func TryParseUnsignedLong(s *string) (uint64, bool) {
	if s == nil {
		return 0, false
	}

	value, failed := parseUnsigned[uint64](*s, bitSize64, true)

	return value, failed == noFailure
}

// ParseUnsignedLong parses s as a 64-bit unsigned integer. It never wraps:
// negative and too large input fail with ErrOverflow, blank or malformed input
// fails with ErrInvalidFormat.
func ParseUnsignedLong(s *string) (uint64, yaerrors.Error) {
	if s == nil {
		return 0, nilInputError("parse unsigned long")
	}

	value, failed := parseUnsigned[uint64](*s, bitSize64, true)

	switch failed {
	case noFailure:
		return value, nil
	case failTooLarge, failTooSmall:
		return 0, overflowError("parse unsigned long: " + *s)
	case failEmpty, failFormat:
		return 0, formatError("parse unsigned long: '" + *s + "'")
	}

	return 0, formatError("parse unsigned long")
}
