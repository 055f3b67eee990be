package sdk

import (
	"net/http"
	"net/url"
	"strings"
)

type operation int

const (
	opListAll operation = iota
	opListByPrefix
	opPreview
	opDefaultPreview
	opBatchPreview
	opSetInline
	opFileInfo
)

// route is one endpoint of a profile. Text endpoints answer with a bare
// string instead of JSON.
type route struct {
	method string
	path   string
	text   bool
}

var profiles = map[ProfileName]map[operation]route{
	ProfileEnveloped: {
		opListAll:        {method: http.MethodGet, path: "/getAllOsss"},
		opListByPrefix:   {method: http.MethodGet, path: "/getOsssByPrefix"},
		opPreview:        {method: http.MethodGet, path: "/generatePreviewUrl"},
		opDefaultPreview: {method: http.MethodGet, path: "/generateDefaultPreviewUrl"},
		opBatchPreview:   {method: http.MethodPost, path: "/batchGeneratePreviewUrls"},
		opSetInline:      {method: http.MethodPost, path: "/setInlineContentDisposition"},
		opFileInfo:       {method: http.MethodGet, path: "/getOssInfoByKey"},
	},
	ProfilePlain: {
		opListAll:        {method: http.MethodGet, path: "/list/all"},
		opListByPrefix:   {method: http.MethodGet, path: "/list"},
		opPreview:        {method: http.MethodGet, path: "/preview-url", text: true},
		opDefaultPreview: {method: http.MethodGet, path: "/preview-url/default", text: true},
		opBatchPreview:   {method: http.MethodPost, path: "/batch-preview-urls"},
		opSetInline:      {method: http.MethodPost, path: "/set-inline", text: true},
		opFileInfo:       {method: http.MethodGet, path: "/file-info"},
	},
}

func (p ProfileName) route(op operation) route {
	return profiles[p][op]
}

func (p ProfileName) enveloped() bool {
	return p != ProfilePlain
}

// expirationQuery returns the expirationSeconds parameter. The plain API
// treats a missing value as the default, so it is only sent when different.
func (p ProfileName) expirationQuery(seconds int) any {
	if p == ProfilePlain && seconds == DefaultExpirationSeconds {
		return nil
	}
	return seconds
}

// escapeKey escapes each segment of an object key for use in a URL path,
// keeping the separators.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
