package valueparser

import (
	"encoding"
	"net/http"
	"reflect"

	"github.com/YaCodeDev/GoYaNumParse/yaerrors"
)

// TryUnmarshal parses value through valueType's own decoding methods and converts the
// result to T. encoding.TextUnmarshaler is tried first, then Unmarshalable.
//
// Example usage:
//
//	level, err := TryUnmarshal[yalogger.Level]("info", reflect.TypeOf(yalogger.Level(0)))
//	if err != nil {
//		// Handle error
//	}
func TryUnmarshal[T ParsableType](value string, valueType reflect.Type) (T, yaerrors.Error) {
	var zero T

	ptr := reflect.New(valueType)

	if unmarshaler, ok := ptr.Interface().(encoding.TextUnmarshaler); ok {
		if err := unmarshaler.UnmarshalText([]byte(value)); err == nil {
			return convertTo[T](ptr.Elem().Interface())
		}
	}

	if unmarshaler, ok := ptr.Interface().(Unmarshalable); ok {
		if err := unmarshaler.Unmarshal(value); err == nil {
			return convertTo[T](ptr.Elem().Interface())
		}
	}

	return zero, yaerrors.FromError(
		http.StatusUnprocessableEntity,
		ErrUnparsableValue,
		"try unmarshal: '"+value+"' as "+valueType.String(),
	)
}
