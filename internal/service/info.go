package service

import (
	"context"
	"errors"

	"github.com/guregu/null/v6"

	"github.com/beanbocchi/ossclient/internal/model"
	"github.com/beanbocchi/ossclient/pkg/objectstore"
)

// FileInfo is the wire form of object metadata. LastModified is in epoch
// milliseconds.
type FileInfo struct {
	Key                string      `json:"key"`
	Size               int64       `json:"size"`
	ContentType        null.String `json:"contentType"`
	LastModified       int64       `json:"lastModified"`
	ETag               string      `json:"etag"`
	ContentDisposition null.String `json:"contentDisposition"`
	URL                string      `json:"url"`
}

func (s *Service) GetFileInfo(ctx context.Context, objectKey string) (*FileInfo, error) {
	info, err := s.objectStore.Stat(ctx, objectKey)
	if errors.Is(err, objectstore.ErrNotFound) {
		return nil, model.ErrFileInfoFailed.Fmt(model.ErrObjectNotFound.Fmt(objectKey))
	}
	if err != nil {
		return nil, model.ErrFileInfoFailed.Fmt(err)
	}

	u, err := s.objectStore.GetURL(ctx, objectKey)
	if err != nil {
		return nil, model.ErrFileInfoFailed.Fmt(err)
	}

	return &FileInfo{
		Key:                objectKey,
		Size:               info.Size,
		ContentType:        info.ContentType,
		LastModified:       info.LastModified.UnixMilli(),
		ETag:               info.ETag,
		ContentDisposition: info.ContentDisposition,
		URL:                u,
	}, nil
}
