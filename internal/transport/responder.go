package transport

import (
	"net/http"

	"github.com/guregu/null/v6"
	"github.com/labstack/echo/v4"

	"github.com/beanbocchi/ossclient/pkg/response"
)

// responder writes handler results in the format of one route group.
type responder interface {
	data(c echo.Context, v any) error
	text(c echo.Context, s string) error
	fail(c echo.Context, status int, err error) error
	// infoFailed reports a failed file-info lookup.
	infoFailed(c echo.Context, err error) error
}

// envelopedResponder wraps everything in {code,data,message}.
type envelopedResponder struct{}

func (envelopedResponder) data(c echo.Context, v any) error {
	return response.FromDTO(c.Response().Writer, http.StatusOK, v)
}

func (envelopedResponder) text(c echo.Context, s string) error {
	return response.FromMessage(c.Response().Writer, http.StatusOK, s)
}

func (envelopedResponder) fail(c echo.Context, status int, err error) error {
	return response.FromError(c.Response().Writer, status, err)
}

// File info failures are reported in the envelope with HTTP 200.
func (envelopedResponder) infoFailed(c echo.Context, err error) error {
	return response.JSON(c.Response().Writer, http.StatusOK, response.Envelope[any]{
		Code:    null.IntFrom(http.StatusInternalServerError),
		Message: err.Error(),
	})
}

// plainResponder writes bare JSON and text bodies.
type plainResponder struct{}

type plainError struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

func (plainResponder) data(c echo.Context, v any) error {
	return response.JSON(c.Response().Writer, http.StatusOK, v)
}

func (plainResponder) text(c echo.Context, s string) error {
	return response.Text(c.Response().Writer, http.StatusOK, s)
}

func (plainResponder) fail(c echo.Context, status int, err error) error {
	return response.JSON(c.Response().Writer, status, plainError{Status: status, Error: err.Error()})
}

func (p plainResponder) infoFailed(c echo.Context, err error) error {
	return p.fail(c, http.StatusInternalServerError, err)
}
