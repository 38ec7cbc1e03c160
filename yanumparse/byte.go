package yanumparse

import "github.com/YaCodeDev/GoYaNumParse/yaerrors"

// TryParseByte parses s as an 8-bit unsigned integer.
// Any leading '-' is rejected, "-0" included.
func TryParseByte(s *string) (uint8, bool) {
	if s == nil {
		return 0, false
	}

	value, failed := parseUnsigned[uint8](*s, bitSize8, false)

	return value, failed == noFailure
}

// ParseByte parses s as an 8-bit unsigned integer.
// Blank, malformed and too large input yield ByteInvalidSentinel (255), negative
// input yields ByteUnderflowSentinel (0). Only nil input is an error.
func ParseByte(s *string) (uint8, yaerrors.Error) {
	if s == nil {
		return 0, nilInputError("parse byte")
	}

	value, failed := parseUnsigned[uint8](*s, bitSize8, true)

	switch failed {
	case noFailure:
		return value, nil
	case failTooSmall:
		return ByteUnderflowSentinel, nil
	case failEmpty, failFormat, failTooLarge:
		return ByteInvalidSentinel, nil
	}

	return ByteInvalidSentinel, nil
}

// TryParseSignedByte parses s as an 8-bit signed integer.
func TryParseSignedByte(s *string) (int8, bool) {
	if s == nil {
		return 0, false
	}

	value, failed := parseSigned[int8](*s, bitSize8)

	return value, failed == noFailure
}

// ParseSignedByte parses s as an 8-bit signed integer.
// Blank and malformed input yield SignedByteInvalidSentinel (127).
// Out-of-range input is not substituted: it fails with ErrOverflow.
func ParseSignedByte(s *string) (int8, yaerrors.Error) {
	if s == nil {
		return 0, nilInputError("parse signed byte")
	}

	value, failed := parseSigned[int8](*s, bitSize8)

	switch failed {
	case noFailure:
		return value, nil
	case failEmpty, failFormat:
		return SignedByteInvalidSentinel, nil
	case failTooLarge, failTooSmall:
		return 0, overflowError("parse signed byte: " + *s)
	}

	return SignedByteInvalidSentinel, nil
}
