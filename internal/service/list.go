package service

import (
	"context"
	"log/slog"

	"github.com/beanbocchi/ossclient/internal/model"
)

type ListFilesParams struct {
	Prefix  string
	MaxKeys int
}

// ListFiles returns the public URLs of at most MaxKeys objects under Prefix.
func (s *Service) ListFiles(ctx context.Context, params ListFilesParams) ([]string, error) {
	maxKeys := params.MaxKeys
	if maxKeys <= 0 || maxKeys > MaxListKeys {
		maxKeys = MaxListKeys
	}

	keys, err := s.objectStore.ListObjects(ctx, params.Prefix, maxKeys)
	if err != nil {
		return nil, model.ErrListFailed.Fmt(err)
	}

	urls := make([]string, 0, len(keys))
	for _, key := range keys {
		u, err := s.objectStore.GetURL(ctx, key)
		if err != nil {
			return nil, model.ErrListFailed.Fmt(err)
		}
		urls = append(urls, u)
	}

	slog.DebugContext(ctx, "listed objects", "count", len(urls), "prefix", params.Prefix)
	return urls, nil
}
