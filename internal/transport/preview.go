package transport

import (
	"net/http"
	"net/url"

	"github.com/guregu/null/v6"
	"github.com/labstack/echo/v4"

	"github.com/beanbocchi/ossclient/internal/model"
	"github.com/beanbocchi/ossclient/internal/service"
)

type PreviewURLRequest struct {
	ObjectKey         string     `query:"objectKey" validate:"required"`
	ExpirationSeconds null.Int32 `query:"expirationSeconds" validate:"omitnil,gt=0"`
}

func (h *Handler) PreviewURL(c echo.Context) error {
	var req PreviewURLRequest
	if err := c.Bind(&req); err != nil {
		return h.out.fail(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&req); err != nil {
		return h.out.fail(c, http.StatusBadRequest, err)
	}

	u, err := h.svc.GeneratePreviewURL(c.Request().Context(), service.PreviewParams{
		ObjectKey:         req.ObjectKey,
		ExpirationSeconds: int(req.ExpirationSeconds.ValueOrZero()),
	})
	if err != nil {
		return h.out.fail(c, http.StatusInternalServerError, err)
	}
	return h.out.text(c, u)
}

type DefaultPreviewURLRequest struct {
	ObjectKey string `query:"objectKey" validate:"required"`
}

func (h *Handler) DefaultPreviewURL(c echo.Context) error {
	var req DefaultPreviewURLRequest
	if err := c.Bind(&req); err != nil {
		return h.out.fail(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&req); err != nil {
		return h.out.fail(c, http.StatusBadRequest, err)
	}

	u, err := h.svc.GeneratePreviewURL(c.Request().Context(), service.PreviewParams{
		ObjectKey:         req.ObjectKey,
		ExpirationSeconds: service.DefaultExpirationSeconds,
	})
	if err != nil {
		return h.out.fail(c, http.StatusInternalServerError, err)
	}
	return h.out.text(c, u)
}

type BatchPreviewURLsRequest struct {
	ObjectKeys        []string `validate:"required"`
	ExpirationSeconds int      `validate:"gte=0"`
}

// BatchPreviewURLs reads the keys from the JSON body. echo only binds
// query parameters for GET, DELETE and HEAD, so they are read explicitly.
func (h *Handler) BatchPreviewURLs(c echo.Context) error {
	var req BatchPreviewURLsRequest
	err := echo.QueryParamsBinder(c).
		Int("expirationSeconds", &req.ExpirationSeconds).
		BindError()
	if err != nil {
		return h.out.fail(c, http.StatusBadRequest, err)
	}
	if err := (&echo.DefaultBinder{}).BindBody(c, &req.ObjectKeys); err != nil {
		return h.out.fail(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&req); err != nil {
		return h.out.fail(c, http.StatusBadRequest, err)
	}

	urls, err := h.svc.BatchGeneratePreviewURLs(c.Request().Context(), service.BatchPreviewParams{
		ObjectKeys:        req.ObjectKeys,
		ExpirationSeconds: req.ExpirationSeconds,
	})
	if err != nil {
		return h.out.fail(c, http.StatusInternalServerError, err)
	}
	return h.out.data(c, urls)
}

type SetInlineRequest struct {
	ObjectKey string `validate:"required"`
}

// SetInline takes the key from the objectKey query parameter, or from the
// path on the plain routes.
func (h *Handler) SetInline(c echo.Context) error {
	var req SetInlineRequest
	if raw := c.Param("*"); raw != "" {
		key, err := url.PathUnescape(raw)
		if err != nil {
			return h.out.fail(c, http.StatusBadRequest, model.ErrValidation.Fmt(err.Error()))
		}
		req.ObjectKey = key
	} else if err := echo.QueryParamsBinder(c).String("objectKey", &req.ObjectKey).BindError(); err != nil {
		return h.out.fail(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&req); err != nil {
		return h.out.fail(c, http.StatusBadRequest, err)
	}

	msg, err := h.svc.SetInlineContentDisposition(c.Request().Context(), req.ObjectKey)
	if err != nil {
		return h.out.fail(c, http.StatusInternalServerError, err)
	}
	return h.out.text(c, msg)
}
