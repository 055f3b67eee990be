package sdk

import (
	"errors"
	"fmt"
)

// ErrorKind tells callers which stage of a call failed.
type ErrorKind string

const (
	KindNetwork      ErrorKind = "network"       // transport failure, timeout or cancellation
	KindHTTP         ErrorKind = "http"          // non-2xx status
	KindAPI          ErrorKind = "api"           // envelope code != 0
	KindDecode       ErrorKind = "decode"        // body could not be parsed
	KindInvalidInput ErrorKind = "invalid_input" // rejected before sending
)

// FallbackAPIMessage is used when a failed envelope carries no message.
const FallbackAPIMessage = "API call failed"

// Error is returned by every Client method.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Code       int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindAPI || e.Kind == KindHTTP:
		return e.Message
	case e.Cause != nil && e.Message != "":
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	case e.Cause != nil:
		return e.Cause.Error()
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newHTTPError(status int, body []byte) *Error {
	msg := fmt.Sprintf("HTTP error: %d", status)
	if len(body) > 0 {
		msg = fmt.Sprintf("%s - %s", msg, body)
	}
	return &Error{Kind: KindHTTP, StatusCode: status, Message: msg}
}

func newAPIError(status, code int, message string) *Error {
	if message == "" {
		message = FallbackAPIMessage
	}
	return &Error{Kind: KindAPI, StatusCode: status, Code: code, Message: message}
}

func newDecodeError(status int, msg string, cause error) *Error {
	return &Error{Kind: KindDecode, StatusCode: status, Message: msg, Cause: cause}
}

func invalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

// IsHTTP reports whether err is a non-2xx response.
func IsHTTP(err error) bool { return kindOf(err) == KindHTTP }

// IsAPI reports whether err is an envelope with a non-zero code.
func IsAPI(err error) bool { return kindOf(err) == KindAPI }

// IsNetwork reports whether err happened before a response arrived.
func IsNetwork(err error) bool { return kindOf(err) == KindNetwork }

// IsDecode reports whether a response body could not be parsed.
func IsDecode(err error) bool { return kindOf(err) == KindDecode }

// IsInvalidInput reports whether the call was rejected locally.
func IsInvalidInput(err error) bool { return kindOf(err) == KindInvalidInput }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

func kindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
