// Package fileutil holds the pure helpers used around object keys: extension
// classification, key extraction from object URLs and human readable sizes.
package fileutil

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Kind is the media category of a file name.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
	KindOther Kind = "other"
)

var (
	imageExtensions = map[string]struct{}{
		"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "webp": {}, "svg": {}, "bmp": {},
	}
	videoExtensions = map[string]struct{}{
		"mp4": {}, "webm": {}, "ogg": {}, "avi": {}, "mov": {},
	}
	audioExtensions = map[string]struct{}{
		"mp3": {}, "wav": {}, "ogg": {}, "aac": {}, "flac": {},
	}

	contentTypes = map[string]string{
		"jpg":  "image/jpeg",
		"jpeg": "image/jpeg",
		"png":  "image/png",
		"gif":  "image/gif",
		"webp": "image/webp",
		"svg":  "image/svg+xml",
		"bmp":  "image/bmp",
		"pdf":  "application/pdf",
		"mp4":  "video/mp4",
		"mp3":  "audio/mpeg",
	}

	sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}
)

// suffix returns the lower-cased text after the last dot, or the whole
// lower-cased name when there is no dot.
func suffix(name string) string {
	return strings.ToLower(name[strings.LastIndex(name, ".")+1:])
}

func hasSuffixIn(name string, set map[string]struct{}) bool {
	if name == "" {
		return false
	}
	_, ok := set[suffix(name)]
	return ok
}

// IsImage reports whether name ends in a known image extension.
func IsImage(name string) bool { return hasSuffixIn(name, imageExtensions) }

// IsVideo reports whether name ends in a known video extension.
func IsVideo(name string) bool { return hasSuffixIn(name, videoExtensions) }

// IsAudio reports whether name ends in a known audio extension.
func IsAudio(name string) bool { return hasSuffixIn(name, audioExtensions) }

// Classify returns the media kind of name. Image wins over video and video
// over audio, so "ogg" is reported as video.
func Classify(name string) Kind {
	switch {
	case IsImage(name):
		return KindImage
	case IsVideo(name):
		return KindVideo
	case IsAudio(name):
		return KindAudio
	default:
		return KindOther
	}
}

// Extension returns the lower-cased extension of name without the dot.
// Names without a dot have no extension.
func Extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// ContentType maps the extension of name to the MIME type the storage
// service is told to serve it with. Unknown extensions yield "".
func ContentType(name string) string {
	return contentTypes[Extension(name)]
}

// ExtractObjectKey returns the object key addressed by an object URL, i.e. its
// decoded path without the leading slash. Input that is not an absolute URL
// falls back to its last slash-delimited segment.
func ExtractObjectKey(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return rawURL[strings.LastIndex(rawURL, "/")+1:]
	}

	return strings.TrimPrefix(u.Path, "/")
}

// FormatFileSize renders bytes with a base-1024 unit ladder and at most two
// decimals, e.g. 1536 -> "1.5 KB". Sizes past TB stay in TB.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	if bytes < 0 {
		if bytes == math.MinInt64 {
			bytes++
		}
		return "-" + FormatFileSize(-bytes)
	}

	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[unit]
}
