/*
Package core holds definitions shared by all packages of glyphsynth.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package core

import (
	"errors"
	"fmt"
)

// ErrorCode classifies the errors of glyphsynth. Clients decide by code
// whether a failure concerns a single sample, the configuration or the
// whole run.
type ErrorCode int

// Error codes
const (
	NOERROR   ErrorCode = 0
	EMISSING  ErrorCode = 122 // resource does not exist (e.g., no glyph image for a label)
	EINVALID  ErrorCode = 123 // validation failed
	EIO       ErrorCode = 124 // reading or writing a file failed
	EINTERNAL ErrorCode = 125 // internal error, broken invariant
)

func (c ErrorCode) String() string {
	switch c {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EIO:
		return "i/o error"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// codedError attaches a code and a message to a cause.
type codedError struct {
	cause error
	code  ErrorCode
	msg   string
}

func (e *codedError) Unwrap() error {
	return e.cause
}

func (e *codedError) Error() string {
	if e.msg == "" || e.msg == e.cause.Error() {
		return fmt.Sprintf("[%d] %v", e.code, e.cause)
	}
	return fmt.Sprintf("[%d] %s: %v", e.code, e.msg, e.cause)
}

// Error creates an error with a code. The message is formatted from format
// and v, the cause is the text of the code.
func Error(code ErrorCode, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// WrapError puts err into an error with a code and a message. err stays
// reachable with errors.Is and errors.As. A nil err is replaced by the text
// of the code.
func WrapError(err error, code ErrorCode, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(code.String())
	}
	return &codedError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Code returns the code of the outermost coded error in err's chain.
// Errors without a code count as EINTERNAL, nil counts as NOERROR.
func Code(err error) ErrorCode {
	if err == nil {
		return NOERROR
	}
	var e *codedError
	if errors.As(err, &e) {
		return e.code
	}
	return EINTERNAL
}

// HasCode is true if err carries code.
func HasCode(err error, code ErrorCode) bool {
	return Code(err) == code
}

// UserMessage returns the message of the outermost coded error in err's
// chain, or the text of err's code. For nil it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *codedError
	if errors.As(err, &e) && e.msg != "" {
		return e.msg
	}
	return Code(err).String()
}
