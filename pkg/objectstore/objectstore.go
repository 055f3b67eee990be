package objectstore

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/guregu/null/v6"
)

// ErrNotFound is returned for keys that do not exist.
var (
	ErrNotFound     = errors.New("object not found")
	ErrSizeMismatch = errors.New("object size mismatch")
)

// DispositionInline asks browsers to render an object instead of saving it.
const DispositionInline = "inline"

type Client interface {
	GetURL(ctx context.Context, key string) (string, error)
	GetPresignedURL(ctx context.Context, key string, expireIn time.Duration, opts ...PresignOption) (string, error)
	ListObjects(ctx context.Context, prefix string, limit int) ([]string, error)
	Stat(ctx context.Context, key string) (*ObjectInfo, error)
	UpdateMetadata(ctx context.Context, key string, meta Metadata) error
	Upload(ctx context.Context, key string, reader io.Reader, meta Metadata) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// Metadata is the per-object information kept next to the content.
// Empty fields are left unchanged by UpdateMetadata.
type Metadata struct {
	ContentType        string
	ContentDisposition string
	// Size is the expected length of an upload. Zero means unknown.
	Size int64
}

type ObjectInfo struct {
	Key                string
	Size               int64
	ContentType        null.String
	ContentDisposition null.String
	LastModified       time.Time
	ETag               string
}

type PresignOptions struct {
	// ResponseDisposition is echoed back as Content-Disposition when the
	// URL is served.
	ResponseDisposition string
}

type PresignOption func(*PresignOptions)

// WithResponseDisposition sets the disposition a presigned URL is served with.
func WithResponseDisposition(d string) PresignOption {
	return func(o *PresignOptions) {
		o.ResponseDisposition = d
	}
}

// ApplyPresignOptions folds opts into a PresignOptions value.
func ApplyPresignOptions(opts ...PresignOption) PresignOptions {
	var o PresignOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
