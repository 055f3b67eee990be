package sdk

import (
	"fmt"
	"strconv"
	"time"

	"github.com/guregu/null/v6"

	"github.com/beanbocchi/ossclient/pkg/fileutil"
)

// FileInfo is the metadata the API reports for one object.
type FileInfo struct {
	Key                string      `json:"key"`
	Size               null.Int64  `json:"size"`
	ContentType        null.String `json:"contentType"`
	LastModified       Timestamp   `json:"lastModified"`
	ETag               null.String `json:"etag"`
	ContentDisposition null.String `json:"contentDisposition"`
	URL                null.String `json:"url"`
}

// Kind classifies the object by its key's extension.
func (f FileInfo) Kind() fileutil.Kind {
	return fileutil.Classify(f.Key)
}

// Timestamp decodes either epoch milliseconds or a date string.
type Timestamp struct {
	null.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		t.Time = null.Time{}
		return nil
	}

	if s[0] == '"' {
		str, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("lastModified: %w", err)
		}
		parsed, ok := fileutil.ParseDate(str)
		if !ok {
			return fmt.Errorf("lastModified: unrecognized date %q", str)
		}
		t.Time = null.TimeFrom(parsed)
		return nil
	}

	ms, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("lastModified: %w", err)
	}
	t.Time = null.TimeFrom(time.UnixMilli(int64(ms)))
	return nil
}

// Format renders the time with fileutil.FormatDate, or "" when unset.
func (t Timestamp) Format(locale string) string {
	if !t.Valid {
		return ""
	}
	return fileutil.FormatDate(t.Time.Time, locale)
}
