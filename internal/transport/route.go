package transport

import (
	"github.com/labstack/echo/v4"

	"github.com/beanbocchi/ossclient/internal/service"
)

const (
	EnvelopedPrefix = "/v1/osss"
	PlainPrefix     = "/api/oss"
	FilesPrefix     = "/files"
)

type Handler struct {
	svc *service.Service
	out responder
}

func SetupRoute(e *echo.Echo, svc *service.Service) {
	v1 := &Handler{svc: svc, out: envelopedResponder{}}
	api := e.Group(EnvelopedPrefix)

	api.GET("/getAllOsss", v1.ListAll)
	api.GET("/getOsssByPrefix", v1.ListByPrefix)
	api.GET("/generatePreviewUrl", v1.PreviewURL)
	api.GET("/generateDefaultPreviewUrl", v1.DefaultPreviewURL)
	api.POST("/batchGeneratePreviewUrls", v1.BatchPreviewURLs)
	api.POST("/setInlineContentDisposition", v1.SetInline)
	api.GET("/getOssInfoByKey", v1.FileInfo)

	plain := &Handler{svc: svc, out: plainResponder{}}
	oss := e.Group(PlainPrefix)

	oss.GET("/list/all", plain.ListAll)
	oss.GET("/list", plain.ListByPrefix)
	oss.GET("/preview-url", plain.PreviewURL)
	oss.GET("/preview-url/default", plain.DefaultPreviewURL)
	oss.POST("/batch-preview-urls", plain.BatchPreviewURLs)
	oss.POST("/set-inline/*", plain.SetInline)
	oss.GET("/file-info", plain.FileInfo)

	e.GET(FilesPrefix+"/*", v1.ServeSigned)
	e.HEAD(FilesPrefix+"/*", v1.ServeSigned)
}
