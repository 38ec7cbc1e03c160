package valueparser

import (
	"net/http"
	"reflect"
	"strconv"

	"github.com/YaCodeDev/GoYaNumParse/yaerrors"
	"github.com/YaCodeDev/GoYaNumParse/yanumparse"
)

// ParseValue is a generic function that converts a string value to the specified type T.
// Numbers go through the yanumparse checked parsers of the matching width, so
// surrounding whitespace is ignored and only invariant literals are accepted.
//
// Example usage:
//
//	var intValue int
//	intValue, err := ParseValue[int]("123")
//	if err != nil {
//		// Handle error
//	}
func ParseValue[T ParsableType](value string) (T, yaerrors.Error) {
	return ParseValueWithCustomType[T](value, reflect.TypeOf(new(T)).Elem())
}

// ParseValueWithCustomType is a generic function that converts a string value to the specified type T,
// using the provided valueType for conversion. It returns the converted value and an error if the conversion fails.
// This function is useful when you need to specify a custom type for parsing, such as when using a custom unmarshal.
//
// Example usage:
//
//	type YourCustomType uint64
//
//	func (s *YourCustomType) Unmarshal(data string) error {
//		switch data {
//		case "FIRST":
//			*s = 1
//		case "SECOND":
//			*s = 2
//		default:
//			return fmt.Errorf("unknown value: %s", data)
//		}
//
//		return nil
//	}
//
//	customValue, err := ParseValueWithCustomType[uint64]("FIRST", reflect.TypeOf(YourCustomType(0)))
//	if err != nil {
//		// Handle error
//	}
func ParseValueWithCustomType[T ParsableType](
	value string,
	valueType reflect.Type,
) (T, yaerrors.Error) {
	var zero T

	switch valueType.Kind() {
	case reflect.String:
		if unmarshaled, err := TryUnmarshal[T](value, valueType); err == nil {
			return unmarshaled, nil
		}

		return convertTo[T](value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if parsed, ok := tryParseSigned(value, valueType.Kind()); ok {
			return convertTo[T](parsed)
		}

	case reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
		reflect.Uintptr:
		if parsed, ok := tryParseUnsigned(value, valueType.Kind()); ok {
			return convertTo[T](parsed)
		}

	case reflect.Float32:
		if parsed, ok := yanumparse.TryParseFloat(&value); ok {
			return convertTo[T](parsed)
		}

	case reflect.Float64:
		if parsed, ok := yanumparse.TryParseDouble(&value); ok {
			return convertTo[T](parsed)
		}

	case reflect.Bool:
		if parsed, err := strconv.ParseBool(value); err == nil {
			return convertTo[T](parsed)
		}

	case reflect.Slice:
		if valueType.Elem().Kind() == reflect.Uint8 {
			return convertTo[T]([]byte(value))
		}

	case reflect.Invalid,
		reflect.Chan,
		reflect.Func,
		reflect.Interface,
		reflect.Map,
		reflect.Ptr,
		reflect.Struct,
		reflect.Complex64,
		reflect.Complex128,
		reflect.Array,
		reflect.UnsafePointer:
		return zero, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrUnknownType,
			"parse value: unsupported type "+valueType.String(),
		)
	}

	val, err := TryUnmarshal[T](value, valueType)
	if err != nil {
		return zero, err.Wrap("parse value")
	}

	return val, nil
}

// ParseValueOrSentinel parses value with the yanumparse best-effort parser matching T's
// width. Failures are answered with that parser's sentinel; the error is only non-nil
// when the parser itself signals (nil input, or the int8, int16 and uint64 categories
// that have no sentinel).
//
// int and uint follow the platform word size.
//
// Example usage:
//
//	port, err := ParseValueOrSentinel[uint16](yanumparse.Text("70000")) // 65535, nil
func ParseValueOrSentinel[T NumericType](value *string) (T, yaerrors.Error) {
	var zero T

	kind := reflect.TypeOf(zero).Kind()

	switch kind {
	case reflect.Int:
		if strconv.IntSize == 32 {
			parsed, err := yanumparse.ParseInteger(value)

			return sentinel[T](parsed, err)
		}

		parsed, err := yanumparse.ParseLong(value)

		return sentinel[T](parsed, err)
	case reflect.Int8:
		parsed, err := yanumparse.ParseSignedByte(value)

		return sentinel[T](parsed, err)
	case reflect.Int16:
		parsed, err := yanumparse.ParseShort(value)

		return sentinel[T](parsed, err)
	case reflect.Int32:
		parsed, err := yanumparse.ParseInteger(value)

		return sentinel[T](parsed, err)
	case reflect.Int64:
		parsed, err := yanumparse.ParseLong(value)

		return sentinel[T](parsed, err)
	case reflect.Uint:
		if strconv.IntSize == 32 {
			parsed, err := yanumparse.ParseUnsignedInteger(value)

			return sentinel[T](parsed, err)
		}

		parsed, err := yanumparse.ParseUnsignedLong(value)

		return sentinel[T](parsed, err)
	case reflect.Uint8:
		parsed, err := yanumparse.ParseByte(value)

		return sentinel[T](parsed, err)
	case reflect.Uint16:
		parsed, err := yanumparse.ParseUnsignedShort(value)

		return sentinel[T](parsed, err)
	case reflect.Uint32:
		parsed, err := yanumparse.ParseUnsignedInteger(value)

		return sentinel[T](parsed, err)
	case reflect.Uint64:
		parsed, err := yanumparse.ParseUnsignedLong(value)

		return sentinel[T](parsed, err)
	case reflect.Float32:
		parsed, err := yanumparse.ParseFloat(value)

		return sentinel[T](parsed, err)
	case reflect.Float64:
		parsed, err := yanumparse.ParseDouble(value)

		return sentinel[T](parsed, err)
	default:
		return zero, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrUnknownType,
			"parse value or sentinel: unsupported kind "+kind.String(),
		)
	}
}

func sentinel[T NumericType, V int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64](
	value V,
	err yaerrors.Error,
) (T, yaerrors.Error) {
	if err != nil {
		return 0, err.Wrap("parse value or sentinel")
	}

	return T(value), nil
}

func tryParseSigned(value string, kind reflect.Kind) (int64, bool) {
	switch kind {
	case reflect.Int8:
		parsed, ok := yanumparse.TryParseSignedByte(&value)

		return int64(parsed), ok
	case reflect.Int16:
		parsed, ok := yanumparse.TryParseShort(&value)

		return int64(parsed), ok
	case reflect.Int32:
		parsed, ok := yanumparse.TryParseInteger(&value)

		return int64(parsed), ok
	case reflect.Int:
		if strconv.IntSize == 32 {
			parsed, ok := yanumparse.TryParseInteger(&value)

			return int64(parsed), ok
		}

		return yanumparse.TryParseLong(&value)
	default:
		return yanumparse.TryParseLong(&value)
	}
}

func tryParseUnsigned(value string, kind reflect.Kind) (uint64, bool) {
	switch kind {
	case reflect.Uint8:
		parsed, ok := yanumparse.TryParseByte(&value)

		return uint64(parsed), ok
	case reflect.Uint16:
		parsed, ok := yanumparse.TryParseUnsignedShort(&value)

		return uint64(parsed), ok
	case reflect.Uint32:
		parsed, ok := yanumparse.TryParseUnsignedInteger(&value)

		return uint64(parsed), ok
	case reflect.Uint, reflect.Uintptr:
		if strconv.IntSize == 32 {
			parsed, ok := yanumparse.TryParseUnsignedInteger(&value)

			return uint64(parsed), ok
		}

		return yanumparse.TryParseUnsignedLong(&value)
	default:
		return yanumparse.TryParseUnsignedLong(&value)
	}
}
