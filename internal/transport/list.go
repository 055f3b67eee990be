package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beanbocchi/ossclient/internal/service"
)

func (h *Handler) ListAll(c echo.Context) error {
	urls, err := h.svc.ListFiles(c.Request().Context(), service.ListFilesParams{})
	if err != nil {
		return h.out.fail(c, http.StatusInternalServerError, err)
	}
	return h.out.data(c, urls)
}

type ListByPrefixRequest struct {
	Prefix string `query:"prefix"`
}

func (h *Handler) ListByPrefix(c echo.Context) error {
	var req ListByPrefixRequest
	if err := c.Bind(&req); err != nil {
		return h.out.fail(c, http.StatusBadRequest, err)
	}

	urls, err := h.svc.ListFiles(c.Request().Context(), service.ListFilesParams{
		Prefix: req.Prefix,
	})
	if err != nil {
		return h.out.fail(c, http.StatusInternalServerError, err)
	}
	return h.out.data(c, urls)
}
