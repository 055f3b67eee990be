package transport

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/beanbocchi/ossclient/internal/model"
	"github.com/beanbocchi/ossclient/pkg/response"
)

// ServeSigned streams an object addressed by a presigned URL.
func (h *Handler) ServeSigned(c echo.Context) error {
	w := c.Response().Writer
	key, err := url.PathUnescape(c.Param("*"))
	if err != nil || key == "" {
		return response.Text(w, http.StatusBadRequest, "invalid object key")
	}

	obj, err := h.svc.OpenSigned(c.Request().Context(), key, c.QueryParams())
	switch {
	case errors.Is(err, model.ErrInvalidSigned):
		return response.Text(w, http.StatusForbidden, err.Error())
	case errors.Is(err, model.ErrObjectNotFound):
		return response.Text(w, http.StatusNotFound, err.Error())
	case err != nil:
		return response.Text(w, http.StatusInternalServerError, err.Error())
	}
	defer obj.Close()

	header := c.Response().Header()
	contentType := obj.Info.ContentType.String
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	header.Set(echo.HeaderContentType, contentType)
	header.Set(echo.HeaderContentLength, strconv.FormatInt(obj.Info.Size, 10))
	header.Set("ETag", fmt.Sprintf("%q", obj.Info.ETag))
	header.Set(echo.HeaderLastModified, obj.Info.LastModified.UTC().Format(http.TimeFormat))
	if obj.Disposition != "" {
		header.Set(echo.HeaderContentDisposition, obj.Disposition)
	}
	c.Response().WriteHeader(http.StatusOK)

	if c.Request().Method == http.MethodHead {
		return nil
	}
	_, err = io.Copy(c.Response(), obj)
	return err
}
