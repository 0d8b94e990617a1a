package errors

import (
	"errors"
	"fmt"
)

const (
	// SuccessABCICode is the code of a call that did not fail.
	SuccessABCICode = 0

	// Errors that were not registered share a single code and, outside
	// of debug mode, a generic message.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and message reported to the client for err.
//
// Registered errors expose their message. Any other error is internal and
// its message is replaced, unless debug is set. In debug mode the message
// carries the stack trace when one is available.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	default:
		return code, err.Error()
	}
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the code of the first registered error found while
// unwrapping err.
func abciCode(err error) uint32 {
	for !isNilErr(err) {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			return internalABCICode
		}
		err = c.Cause()
	}
	return SuccessABCICode
}

// Redact hides the details of panics and of errors that were not
// registered, unless debug is set.
func Redact(err error, debug bool) error {
	if debug {
		return err
	}
	if ErrPanic.Is(err) || abciCode(err) == internalABCICode {
		return errors.New(internalABCILog)
	}
	return err
}
