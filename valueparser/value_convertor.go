package valueparser

import (
	"net/http"
	"reflect"

	"github.com/YaCodeDev/GoYaNumParse/yaerrors"
)

// ConvertValue converts a reflect.Value to the specified target type.
// An invalid value converts to the zero value of targetType.
func ConvertValue(val reflect.Value, targetType reflect.Type) (reflect.Value, yaerrors.Error) {
	if !val.IsValid() {
		return reflect.Zero(targetType), nil
	}

	if val.Type().ConvertibleTo(targetType) {
		return val.Convert(targetType), nil
	}

	return reflect.Value{}, yaerrors.FromError(
		http.StatusInternalServerError,
		ErrInvalidValue,
		"convert value: "+val.Type().String()+" is not convertible to "+targetType.String(),
	)
}

// convertTo converts v into T, going through reflection so that named types
// (type Port uint16) accept values of their underlying kind.
func convertTo[T any](v any) (T, yaerrors.Error) {
	var zero T

	converted, err := ConvertValue(reflect.ValueOf(v), reflect.TypeOf(zero))
	if err != nil {
		return zero, err
	}

	val, ok := converted.Interface().(T)
	if !ok {
		return zero, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrInvalidValue,
			"convert value: unexpected result type",
		)
	}

	return val, nil
}
