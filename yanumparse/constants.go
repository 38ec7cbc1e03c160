package yanumparse

import (
	"math"
	"regexp"
)

const (
	decimalBase = 10
	bitSize8    = 8
	bitSize16   = 16
	bitSize32   = 32
	bitSize64   = 64

	asciiSpace = " \t\n\v\f\r"
)

// Sentinels returned by the best-effort parsers. Every type has its own policy,
// see the package documentation for the full table.
const (
	IntegerOverflowSentinel int32 = -1

	UnsignedIntegerInvalidSentinel  uint32 = 0
	UnsignedIntegerOverflowSentinel uint32 = math.MaxUint32

	ByteInvalidSentinel   uint8 = math.MaxUint8
	ByteUnderflowSentinel uint8 = 0

	SignedByteInvalidSentinel int8 = math.MaxInt8

	UnsignedShortOverflowSentinel uint16 = math.MaxUint16

	LongInvalidSentinel   int64 = math.MinInt64
	LongOverflowSentinel  int64 = -1
	LongUnderflowSentinel int64 = math.MinInt64

	DoubleInvalidSentinel = math.SmallestNonzeroFloat64
)

// DecimalMaxScale is the number of fractional digits a decimal keeps; extra digits are
// rounded half away from zero.
const DecimalMaxScale = 28

const decimalMaxLiteral = "79228162514264337593543950335"

var (
	floatPattern   = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
	decimalPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)$`)
)
