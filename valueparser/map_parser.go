package valueparser

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaNumParse/yaerrors"
)

// ParseMap parses a string into a map[K]V using the provided separators.
// It splits the string by 'entrySeparator' and each entry by 'kvSeparator'.
// If 'entrySeparator' is nil, it defaults to DefaultEntrySeparator.
// If 'kvSeparator' is nil, it defaults to DefaultKVSeparator.
// If the string is empty, it returns an empty map.
//
// Example usage:
//
//	var myMap map[string]int
//	myMap, err := ParseMap[string, int]("key1:1,key2:1", nil, nil)
//	if err != nil {
//		// Handle error
//	}
func ParseMap[K ParsableComparableType, V ParsableType](
	str string,
	entrySeparator *string,
	kvSeparator *string,
) (map[K]V, yaerrors.Error) {
	result := make(map[K]V)

	if str == "" {
		return result, nil
	}

	var (
		k   K
		v   V
		err yaerrors.Error
	)

	if entrySeparator == nil {
		s := DefaultEntrySeparator
		entrySeparator = &s
	}

	if kvSeparator == nil {
		s := DefaultKVSeparator
		kvSeparator = &s
	}

	for item := range strings.SplitSeq(str, *entrySeparator) {
		parts := strings.Split(item, *kvSeparator)
		if len(parts) != MapPartsCount {
			return nil, yaerrors.FromError(
				http.StatusUnprocessableEntity,
				ErrInvalidEntry,
				fmt.Sprintf("parse map: expected %d parts, got %d in '%s'", MapPartsCount, len(parts), item),
			)
		}

		key := strings.TrimSpace(parts[0])
		if k, err = ParseValue[K](key); err != nil {
			return nil, err.Wrap(fmt.Sprintf("parse map: failed to parse key '%s'", key))
		}

		value := strings.TrimSpace(parts[1])
		if v, err = ParseValue[V](value); err != nil {
			return nil, err.Wrap(fmt.Sprintf("parse map: failed to parse value '%s'", value))
		}

		result[k] = v
	}

	return result, nil
}
