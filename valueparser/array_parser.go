package valueparser

import (
	"fmt"
	"strings"

	"github.com/YaCodeDev/GoYaNumParse/yaerrors"
)

// ParseArray splits a string by 'separator' and parses each part into T.
// If the string is empty, it returns an empty slice.
// If 'separator' is nil, it defaults to DefaultEntrySeparator.
//
// Example usage:
//
//	var myArray []int
//	myArray, err := ParseArray[int]("1,2,3", nil)
//	if err != nil {
//		// Handle error
//	}
func ParseArray[T ParsableType](
	str string,
	separator *string,
) ([]T, yaerrors.Error) {
	return parseParts(str, separator, func(part string) (T, yaerrors.Error) {
		return ParseValue[T](strings.TrimSpace(part))
	})
}

// ParseArrayOrSentinel is ParseArray with every part going through ParseValueOrSentinel,
// so malformed parts become the sentinel of T instead of failing the whole slice.
//
// Example usage:
//
//	bytes, err := ParseArrayOrSentinel[uint8]("1,x,-3", nil) // [1 255 0]
func ParseArrayOrSentinel[T NumericType](
	str string,
	separator *string,
) ([]T, yaerrors.Error) {
	return parseParts(str, separator, func(part string) (T, yaerrors.Error) {
		return ParseValueOrSentinel[T](&part)
	})
}

func parseParts[T any](
	str string,
	separator *string,
	parse func(part string) (T, yaerrors.Error),
) ([]T, yaerrors.Error) {
	if str == "" {
		return []T{}, nil
	}

	if separator == nil {
		s := DefaultEntrySeparator
		separator = &s
	}

	parts := strings.Split(str, *separator)
	result := make([]T, 0, len(parts))

	for _, part := range parts {
		parsed, err := parse(part)
		if err != nil {
			return nil, err.Wrap(
				fmt.Sprintf(
					"parse array: failed to parse part '%s'",
					strings.TrimSpace(part),
				),
			)
		}

		result = append(result, parsed)
	}

	return result, nil
}
