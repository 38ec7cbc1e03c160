package yanumparse

import (
	"errors"
	"net/http"

	"github.com/YaCodeDev/GoYaNumParse/yaerrors"
)

var (
	ErrNilInput      = errors.New("input is nil")
	ErrInvalidFormat = errors.New("input is not in a valid numeric format")
	ErrOverflow      = errors.New("value is out of range for the target type")
)

func nilInputError(op string) yaerrors.Error {
	return yaerrors.FromError(http.StatusBadRequest, ErrNilInput, op)
}

func formatError(op string) yaerrors.Error {
	return yaerrors.FromError(http.StatusUnprocessableEntity, ErrInvalidFormat, op)
}

func overflowError(op string) yaerrors.Error {
	return yaerrors.FromError(http.StatusRequestedRangeNotSatisfiable, ErrOverflow, op)
}
