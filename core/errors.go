package core

import (
	"errors"
	"fmt"
	"os"
)

// Error codes of the transcription packages.
//
// ECONFIG and EDUPLICATE are configuration errors: inventory data which
// cannot form a consistent transcription system, or a request for a system
// which does not exist. They are raised when a system is constructed and are
// not meant to be recovered from. EUNKNOWNFEATURE is reported when a feature
// name contains a value no system knows; callers decide on a fallback.
const (
	NOERROR         int = 0
	ECONFIG         int = 120 // inconsistent inventory or unknown system
	EUNKNOWNFEATURE int = 121 // feature value not known to a system
	EMISSING        int = 122 // data table or model does not exist
	EINVALID        int = 123 // malformed input
	EDUPLICATE      int = 124 // grapheme or feature name registered twice
	EINTERNAL       int = 125
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case ECONFIG:
		return "configuration error"
	case EUNKNOWNFEATURE:
		return "unknown feature"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EDUPLICATE:
		return "duplicate"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type codedError struct {
	error
	code int
	msg  string
}

func (e codedError) Unwrap() error {
	return e.error
}

func (e codedError) Error() string {
	if e.msg == "" || e.msg == errorText(e.code) {
		return fmt.Sprintf("[%d] %v", e.code, e.error)
	}
	return fmt.Sprintf("[%d] %v: %s", e.code, e.error, e.msg)
}

func (e codedError) ErrorCode() int {
	return e.code
}

func (e codedError) UserMessage() string {
	return e.msg
}

var _ AppError = codedError{}

// ErrorWithCode adds an error code to err's error chain.
// A nil err is replaced by an error denoting the code's text.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return codedError{err, code, errorText(code)}
}

// WrapError wraps an error in a coded error with a user message.
// If err is nil, an error denoting the code's text is wrapped.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return codedError{err, code, fmt.Sprintf(format, v...)}
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return codedError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// Code returns the error code associated with an error.
// If no code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// IsConfigurationError is true for errors which result from inconsistent
// inventory data or from requesting an unknown transcription system.
func IsConfigurationError(err error) bool {
	switch Code(err) {
	case ECONFIG, EDUPLICATE:
		return true
	}
	return false
}

// IsUnknownFeature is true if err reports a feature value unknown to a
// transcription system.
func IsUnknownFeature(err error) bool {
	return err != nil && Code(err) == EUNKNOWNFEATURE
}

// UserMessage returns the user message associated with an error.
// If no message is found, it returns the text of the error's code.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// UserError prints an error to stderr, preferring the user message of
// coded errors.
func UserError(err error) {
	if e := AppError(nil); errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "%s: %s\n", errorText(e.ErrorCode()), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
