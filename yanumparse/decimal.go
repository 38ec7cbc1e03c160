package yanumparse

import (
	"math/big"
	"strings"

	"github.com/YaCodeDev/GoYaNumParse/yaerrors"
	"github.com/shopspring/decimal"
)

var (
	// DecimalMax is the largest value a decimal may hold.
	DecimalMax = decimal.RequireFromString(decimalMaxLiteral)
	// DecimalMin is the smallest value a decimal may hold.
	DecimalMin = DecimalMax.Neg()

	// decimalMaxCoefficient is the largest unscaled value, 2^96-1.
	decimalMaxCoefficient = DecimalMax.Coefficient()
)

// parseDecimal parses s as a plain decimal literal: optional sign, digits and an optional
// fractional part. Exponents are not part of the grammar. Fractional digits beyond
// DecimalMaxScale are rounded, and so are the lowest fractional digits of a value whose
// unscaled coefficient needs more than 96 bits.
func parseDecimal(s string) (decimal.Decimal, failure) {
	trimmed := trim(s)
	if trimmed == "" {
		return decimal.Zero, failEmpty
	}

	if !decimalPattern.MatchString(trimmed) {
		return decimal.Zero, failFormat
	}

	value, err := decimal.NewFromString(strings.TrimPrefix(trimmed, "+"))
	if err != nil {
		return decimal.Zero, failFormat
	}

	if value.Exponent() < -DecimalMaxScale {
		value = value.Round(DecimalMaxScale)
	}

	value = fitCoefficient(value)

	switch {
	case value.GreaterThan(DecimalMax):
		return decimal.Zero, failTooLarge
	case value.LessThan(DecimalMin):
		return decimal.Zero, failTooSmall
	}

	return value, noFailure
}

// fitCoefficient drops fractional digits, rounding half away from zero, until the
// coefficient fits into 96 bits. Integral digits are never dropped; those values are
// left to the range check.
func fitCoefficient(value decimal.Decimal) decimal.Decimal {
	for value.Exponent() < 0 {
		coefficient := value.Coefficient()
		if new(big.Int).Abs(coefficient).Cmp(decimalMaxCoefficient) <= 0 {
			break
		}

		value = value.Round(-value.Exponent() - 1)
	}

	return value
}

// TryParseDecimal parses s as a decimal bounded by DecimalMin and DecimalMax.
// Out-of-range input is a failure, it is never clamped here.
func TryParseDecimal(s *string) (decimal.Decimal, bool) {
	if s == nil {
		return decimal.Zero, false
	}

	value, failed := parseDecimal(*s)
	if failed != noFailure {
		return decimal.Zero, false
	}

	return value, true
}

// ParseDecimal parses s as a decimal using the clamping policy: blank and malformed
// input yield zero, out-of-range input is clamped to DecimalMax or DecimalMin.
// Only nil input is an error.
//
// A stricter marker-based policy also circulates for this conversion. It answers blank
// input and the two literals equal to ±DecimalMax with distinct negative markers and
// generic overflow with zero. That policy is not implemented here.
func ParseDecimal(s *string) (decimal.Decimal, yaerrors.Error) {
	if s == nil {
		return decimal.Zero, nilInputError("parse decimal")
	}

	value, failed := parseDecimal(*s)

	switch failed {
	case noFailure:
		return value, nil
	case failTooLarge:
		return DecimalMax, nil
	case failTooSmall:
		return DecimalMin, nil
	case failEmpty, failFormat:
		return decimal.Zero, nil
	}

	return decimal.Zero, nil
}
