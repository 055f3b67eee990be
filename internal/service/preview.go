package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/beanbocchi/ossclient/internal/model"
	"github.com/beanbocchi/ossclient/pkg/fileutil"
	"github.com/beanbocchi/ossclient/pkg/objectstore"
)

// DefaultExpirationSeconds applies when a request does not name one.
const DefaultExpirationSeconds = 3600

type PreviewParams struct {
	ObjectKey         string
	ExpirationSeconds int
}

func expiration(seconds int) time.Duration {
	if seconds <= 0 {
		seconds = DefaultExpirationSeconds
	}
	return time.Duration(seconds) * time.Second
}

// GeneratePreviewURL signs a URL that serves the object inline.
func (s *Service) GeneratePreviewURL(ctx context.Context, params PreviewParams) (string, error) {
	u, err := s.objectStore.GetPresignedURL(ctx, params.ObjectKey, expiration(params.ExpirationSeconds),
		objectstore.WithResponseDisposition(objectstore.DispositionInline))
	if err != nil {
		return "", model.ErrPreviewFailed.Fmt(err)
	}
	return u, nil
}

type BatchPreviewParams struct {
	ObjectKeys        []string
	ExpirationSeconds int
}

// BatchGeneratePreviewURLs returns one URL per key, in order. A key that
// cannot be signed gets its public URL instead.
func (s *Service) BatchGeneratePreviewURLs(ctx context.Context, params BatchPreviewParams) ([]string, error) {
	urls := make([]string, 0, len(params.ObjectKeys))
	for _, key := range params.ObjectKeys {
		u, err := s.GeneratePreviewURL(ctx, PreviewParams{
			ObjectKey:         key,
			ExpirationSeconds: params.ExpirationSeconds,
		})
		if err != nil {
			slog.WarnContext(ctx, "preview url failed, using public url", "key", key, "error", err)
			if u, err = s.objectStore.GetURL(ctx, key); err != nil {
				return nil, model.ErrPreviewFailed.Fmt(err)
			}
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// SetInlineContentDisposition marks the object to be rendered inline and
// fixes its content type from the extension when it is known.
func (s *Service) SetInlineContentDisposition(ctx context.Context, objectKey string) (string, error) {
	err := s.objectStore.UpdateMetadata(ctx, objectKey, objectstore.Metadata{
		ContentType:        fileutil.ContentType(objectKey),
		ContentDisposition: objectstore.DispositionInline,
	})
	if errors.Is(err, objectstore.ErrNotFound) {
		return "", model.ErrSetInlineFailed.Fmt(model.ErrObjectNotFound.Fmt(objectKey))
	}
	if err != nil {
		return "", model.ErrSetInlineFailed.Fmt(err)
	}

	slog.InfoContext(ctx, "content disposition set", "key", objectKey, "disposition", objectstore.DispositionInline)
	return fmt.Sprintf("object %s set to inline preview", objectKey), nil
}
