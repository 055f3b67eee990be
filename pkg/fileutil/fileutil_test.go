package fileutil

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		image bool
		video bool
		audio bool
	}{
		{name: "jpg", file: "photo.jpg", image: true},
		{name: "upper case jpeg", file: "PHOTO.JPEG", image: true},
		{name: "svg in folder", file: "icons/logo.svg", image: true},
		{name: "mov", file: "clip.MoV", video: true},
		{name: "webm", file: "a.b.webm", video: true},
		{name: "ogg is both", file: "sound.ogg", video: true, audio: true},
		{name: "flac", file: "track.flac", audio: true},
		{name: "unknown extension", file: "notes.txt"},
		{name: "trailing dot", file: "photo."},
		{name: "bare extension", file: "png", image: true},
		{name: "empty", file: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.image, IsImage(tt.file), "IsImage")
			assert.Equal(t, tt.video, IsVideo(tt.file), "IsVideo")
			assert.Equal(t, tt.audio, IsAudio(tt.file), "IsAudio")
		})
	}
}

func TestClassifierAcceptsEveryListedExtension(t *testing.T) {
	for ext := range imageExtensions {
		assert.True(t, IsImage("f."+ext), ext)
		assert.True(t, IsImage("f."+strings.ToUpper(ext)), ext)
	}
	for ext := range videoExtensions {
		assert.True(t, IsVideo("f."+ext), ext)
		assert.True(t, IsVideo("f."+strings.ToUpper(ext)), ext)
	}
	for ext := range audioExtensions {
		assert.True(t, IsAudio("f."+ext), ext)
		assert.True(t, IsAudio("f."+strings.ToUpper(ext)), ext)
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, KindImage, Classify("a.PNG"))
	assert.Equal(t, KindVideo, Classify("a.ogg"))
	assert.Equal(t, KindAudio, Classify("a.wav"))
	assert.Equal(t, KindOther, Classify("a.pdf"))
	assert.Equal(t, KindOther, Classify(""))
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "jpg", Extension("dir/photo.JPG"))
	assert.Equal(t, "gz", Extension("archive.tar.gz"))
	assert.Equal(t, "", Extension("README"))
	assert.Equal(t, "", Extension(""))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentType("a.jpeg"))
	assert.Equal(t, "image/svg+xml", ContentType("a.SVG"))
	assert.Equal(t, "application/pdf", ContentType("doc.pdf"))
	assert.Equal(t, "audio/mpeg", ContentType("song.mp3"))
	assert.Equal(t, "", ContentType("song.flac"))
}

func TestExtractObjectKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "http://host/a/b/c.jpg", want: "a/b/c.jpg"},
		{in: "https://bucket.oss-cn-hangzhou.aliyuncs.com/images/cat.png?Expires=1", want: "images/cat.png"},
		{in: "https://host", want: ""},
		{in: "https://host/my%20docs/a%20b.pdf", want: "my docs/a b.pdf"},
		{in: "images/cat.png", want: "cat.png"},
		{in: "not a url", want: "not a url"},
		{in: "http://[::1", want: "[::1"},
		{in: "folder/", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractObjectKey(tt.in))
		})
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{in: 0, want: "0 Bytes"},
		{in: 1, want: "1 Bytes"},
		{in: 1023, want: "1023 Bytes"},
		{in: 1024, want: "1 KB"},
		{in: 1536, want: "1.5 KB"},
		{in: 1100, want: "1.07 KB"},
		{in: 5 * 1024 * 1024, want: "5 MB"},
		{in: 3 * 1024 * 1024 * 1024, want: "3 GB"},
		{in: 2 * 1024 * 1024 * 1024 * 1024, want: "2 TB"},
		{in: 2048 * 1024 * 1024 * 1024 * 1024, want: "2048 TB"},
		{in: -1536, want: "-1.5 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileSize(tt.in))
		})
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.June, 29, 14, 5, 9, 0, time.UTC)

	zhOut := FormatDate(ts, "zh-CN")
	assert.Contains(t, zhOut, "2024")
	assert.Contains(t, zhOut, "05:09")

	enOut := FormatDate(ts, "en")
	assert.Contains(t, enOut, "05:09")
	assert.NotEqual(t, zhOut, enOut)

	assert.Equal(t, zhOut, FormatDate(ts, "xx"), "unknown locale falls back to zh")
	assert.Equal(t, "", FormatDate(time.Time{}, "zh"))
}

func TestFormatDateString(t *testing.T) {
	local := time.Date(2024, time.June, 29, 14, 5, 9, 0, time.Local)

	assert.Equal(t, FormatDate(local, "zh"), FormatDateString("2024-06-29 14:05:09", "zh"))
	assert.Equal(t, FormatDate(local, "zh"), FormatDateString(local.Format(time.RFC3339), "zh"))
	assert.Equal(t, FormatDate(time.UnixMilli(1719669909000).Local(), "zh"), FormatDateString("1719669909000", "zh"))
	assert.Equal(t, "", FormatDateString("", "zh"))
	assert.Equal(t, "", FormatDateString("yesterday", "zh"))
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("1719669909000")
	assert.True(t, ok)
	assert.Equal(t, int64(1719669909000), got.UnixMilli())

	got, ok = ParseDate("2024-06-29")
	assert.True(t, ok)
	assert.Equal(t, 29, got.Day())

	_, ok = ParseDate("  ")
	assert.False(t, ok)
}
