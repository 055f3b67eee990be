package response

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/guregu/null/v6"
)

// CodeSuccess is the only envelope code that means success.
const CodeSuccess = 0

// Envelope is the {code, data, message} wrapper used by the v1 OSS API.
// A missing or null code is not a success.
type Envelope[T any] struct {
	Code    null.Int `json:"code"`
	Data    T        `json:"data"`
	Message string   `json:"message"`
}

// Result is the outcome carried by an envelope: either the data (OK) or the
// server's failure message.
type Result[T any] struct {
	Data    T
	Message string
	OK      bool
}

// Result discriminates the envelope on its code.
func (e Envelope[T]) Result() Result[T] {
	if !e.Code.Valid || e.Code.Int64 != CodeSuccess {
		return Result[T]{Message: e.Message}
	}
	return Result[T]{Data: e.Data, Message: e.Message, OK: true}
}

// FromDTO writes data inside a success envelope.
func FromDTO(w http.ResponseWriter, status int, data any) error {
	return JSON(w, status, Envelope[any]{
		Code:    null.IntFrom(CodeSuccess),
		Data:    data,
		Message: "success",
	})
}

// FromMessage writes a success envelope whose data is msg.
func FromMessage(w http.ResponseWriter, status int, msg string) error {
	return FromDTO(w, status, msg)
}

// FromError writes a failure envelope. The envelope code mirrors the HTTP
// status so that clients reading only the body still see a failure.
func FromError(w http.ResponseWriter, status int, err error) error {
	code := status
	if code == CodeSuccess {
		code = http.StatusInternalServerError
	}
	return JSON(w, status, Envelope[any]{
		Code:    null.IntFrom(int64(code)),
		Message: err.Error(),
	})
}

// JSON writes v without an envelope.
func JSON(w http.ResponseWriter, status int, v any) error {
	body, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

// Text writes a plain-text body.
func Text(w http.ResponseWriter, status int, s string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write([]byte(s))
	return err
}
