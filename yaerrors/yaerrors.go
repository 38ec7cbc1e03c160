package yaerrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaNumParse/yalogger"
)

// Error is a coded error with a readable traceback.
//
// The code is an HTTP status code so that callers embedding parsers in request handlers
// can forward it as is. The traceback grows every time the error is wrapped on its way
// up the call stack, while Unwrap always returns the original cause, so errors.Is keeps
// matching the sentinel errors a package exports.
type Error interface {
	error
	Wrap(msg string) Error
	WrapWithLog(msg string, log yalogger.Logger) Error
	Code() int
	Unwrap() error
	UnwrapLastError() string
}

const (
	codeSeparate  = " | "
	errorSeparate = " -> "
)

type yaError struct {
	code      int
	cause     error
	traceback string
}

// FromError builds an Error around cause with the given code and context message.
func FromError(code int, cause error, wrap string) Error {
	return &yaError{
		code:      code,
		cause:     cause,
		traceback: fmt.Sprintf("%s: %v", wrap, cause),
	}
}

// FromErrorWithLog is FromError that also reports the message at error level.
func FromErrorWithLog(code int, cause error, wrap string, log yalogger.Logger) Error {
	err := FromError(code, cause, wrap)

	if log != nil {
		log.Error(err.UnwrapLastError())
	}

	return err
}

// FromString builds an Error from a bare message.
func FromString(code int, msg string) Error {
	return &yaError{
		code:      code,
		cause:     errors.New(msg), //nolint:err113
		traceback: msg,
	}
}

// FromStringWithLog is FromString that also reports the message at error level.
func FromStringWithLog(code int, msg string, log yalogger.Logger) Error {
	if log != nil {
		log.Error(msg)
	}

	return FromString(code, msg)
}

// Is reports whether err, or any error it wraps, matches target.
// A nil Error stored in an interface is treated as no error at all.
func Is(err error, target error) bool {
	if err == nil {
		return target == nil
	}

	if ya, ok := err.(*yaError); ok && ya == nil {
		return target == nil
	}

	return errors.Is(err, target)
}

// CodeOf returns the code carried by err.
// Errors that do not come from this package report http.StatusInternalServerError.
func CodeOf(err error) int {
	if err == nil {
		return 0
	}

	var coded Error
	if errors.As(err, &coded) {
		return coded.Code()
	}

	return http.StatusInternalServerError
}

func (e *yaError) Error() string {
	safetyCheck(&e)

	return fmt.Sprintf("%d%s%s", e.code, codeSeparate, e.traceback)
}

func (e *yaError) Unwrap() error {
	safetyCheck(&e)

	return e.cause
}

// UnwrapLastError returns the outermost traceback segment.
func (e *yaError) UnwrapLastError() string {
	safetyCheck(&e)

	last, _, _ := strings.Cut(e.traceback, errorSeparate)

	return last
}

// Wrap prepends msg to the traceback. Use it every time the error crosses a layer.
func (e *yaError) Wrap(msg string) Error {
	safetyCheck(&e)
	e.traceback = msg + errorSeparate + e.traceback

	return e
}

func (e *yaError) WrapWithLog(msg string, log yalogger.Logger) Error {
	if log != nil {
		log.Error(msg)
	}

	return e.Wrap(msg)
}

func (e *yaError) Code() int {
	safetyCheck(&e)

	return e.code
}

// safetyCheck replaces a nil receiver with ErrTeapot so methods never dereference nil.
func safetyCheck(err **yaError) {
	if *err == nil {
		*err = &yaError{
			code:      http.StatusTeapot,
			cause:     ErrTeapot,
			traceback: ErrTeapot.Error(),
		}
	}
}
