package model

import "fmt"

type ErrorWithCode interface {
	Error() string
	Code() string
}

type Error struct {
	ErrCode string `json:"code"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	return e.Message
}

func (e Error) Code() string {
	return e.ErrCode
}

// Fmt creates a new error from the base error template with provided arguments
func (e Error) Fmt(args ...any) Error {
	return Error{
		ErrCode: e.ErrCode,
		Message: fmt.Sprintf(e.Message, args...),
	}
}

// Is matches errors produced from the same template regardless of arguments.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.ErrCode == e.ErrCode
}

func NewError(code, message string) Error {
	return Error{
		ErrCode: code,
		Message: message,
	}
}

var (
	ErrValidation       = NewError("validation", "Validation error: %s")
	ErrResourceNotFound = NewError("resource.not_found", "Resource not found")

	ErrObjectNotFound  = NewError("object.not_found", "object %s not found")
	ErrListFailed      = NewError("object.list", "list objects failed: %v")
	ErrPreviewFailed   = NewError("object.preview", "generate preview url failed: %v")
	ErrSetInlineFailed = NewError("object.set_inline", "set content disposition failed: %v")
	ErrFileInfoFailed  = NewError("object.info", "get file info failed: %v")
	ErrInvalidSigned   = NewError("object.signature", "invalid or expired preview url")
)
