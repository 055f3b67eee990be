package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type FileInfoRequest struct {
	ObjectKey string `query:"objectKey" validate:"required"`
}

func (h *Handler) FileInfo(c echo.Context) error {
	var req FileInfoRequest
	if err := c.Bind(&req); err != nil {
		return h.out.fail(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&req); err != nil {
		return h.out.fail(c, http.StatusBadRequest, err)
	}

	info, err := h.svc.GetFileInfo(c.Request().Context(), req.ObjectKey)
	if err != nil {
		return h.out.infoFailed(c, err)
	}
	return h.out.data(c, info)
}
