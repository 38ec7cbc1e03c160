package yanumparse

import "github.com/YaCodeDev/GoYaNumParse/yaerrors"

// TryParseShort parses s as a 16-bit signed integer.
func TryParseShort(s *string) (int16, bool) {
	if s == nil {
		return 0, false
	}

	value, failed := parseSigned[int16](*s, bitSize16)

	return value, failed == noFailure
}

// ParseShort parses s as a 16-bit signed integer. It has no sentinels:
// blank or malformed input fails with ErrInvalidFormat and out-of-range input
// with ErrOverflow.
func ParseShort(s *string) (int16, yaerrors.Error) {
	if s == nil {
		return 0, nilInputError("parse short")
	}

	value, failed := parseSigned[int16](*s, bitSize16)

	switch failed {
	case noFailure:
		return value, nil
	case failEmpty, failFormat:
		return 0, formatError("parse short: '" + *s + "'")
	case failTooLarge, failTooSmall:
		return 0, overflowError("parse short: " + *s)
	}

	return 0, formatError("parse short")
}

// TryParseUnsignedShort parses s as a 16-bit unsigned integer.
// Negative zero is accepted as 0.
func TryParseUnsignedShort(s *string) (uint16, bool) {
	if s == nil {
		return 0, false
	}

	value, failed := parseUnsigned[uint16](*s, bitSize16, true)

	return value, failed == noFailure
}

// ParseUnsignedShort parses s as a 16-bit unsigned integer.
// Blank and malformed input yield 0; out-of-range input on either side yields
// UnsignedShortOverflowSentinel (65535). Only nil input is an error.
func ParseUnsignedShort(s *string) (uint16, yaerrors.Error) {
	if s == nil {
		return 0, nilInputError("parse unsigned short")
	}

	value, failed := parseUnsigned[uint16](*s, bitSize16, true)

	switch failed {
	case noFailure:
		return value, nil
	case failEmpty, failFormat:
		return 0, nil
	case failTooLarge, failTooSmall:
		return UnsignedShortOverflowSentinel, nil
	}

	return 0, nil
}
