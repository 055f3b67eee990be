package fileutil

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
)

// DefaultLocale is used when FormatDate is given an unknown locale.
const DefaultLocale = "zh"

var translators = map[string]locales.Translator{
	"zh": zh.New(),
	"en": en.New(),
}

// date-like inputs accepted by FormatDateString, tried in order
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

func translator(locale string) locales.Translator {
	key := strings.ToLower(locale)
	if i := strings.IndexAny(key, "-_"); i > 0 {
		key = key[:i]
	}
	if trans, ok := translators[key]; ok {
		return trans
	}
	return translators[DefaultLocale]
}

// FormatDate renders t as "<short date> <medium time>" in the given locale.
// The zero time renders as "".
func FormatDate(t time.Time, locale string) string {
	if t.IsZero() {
		return ""
	}
	trans := translator(locale)
	return trans.FmtDateShort(t) + " " + trans.FmtTimeMedium(t)
}

// FormatDateString parses a date-like string (RFC 3339, "2006-01-02 15:04:05",
// a plain date or epoch milliseconds) and formats it like FormatDate in local
// time. Empty or unparseable input yields "".
func FormatDateString(s, locale string) string {
	t, ok := ParseDate(s)
	if !ok {
		return ""
	}
	return FormatDate(t.Local(), locale)
}

// ParseDate accepts the same inputs as FormatDateString. Zone-less layouts are
// interpreted in local time.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms), true
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
