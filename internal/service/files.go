package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"github.com/beanbocchi/ossclient/internal/model"
	"github.com/beanbocchi/ossclient/pkg/objectstore"
)

// SignedObject is an open object served through a presigned URL.
type SignedObject struct {
	io.ReadCloser
	Info        *objectstore.ObjectInfo
	Disposition string
}

// OpenSigned verifies a presigned URL query and opens the object. The
// caller closes the returned object.
func (s *Service) OpenSigned(ctx context.Context, objectKey string, q url.Values) (*SignedObject, error) {
	disposition, err := s.verifier.VerifyPresigned(objectKey, q)
	if err != nil {
		return nil, model.ErrInvalidSigned
	}

	info, err := s.objectStore.Stat(ctx, objectKey)
	if errors.Is(err, objectstore.ErrNotFound) {
		return nil, model.ErrObjectNotFound.Fmt(objectKey)
	}
	if err != nil {
		return nil, err
	}

	rc, err := s.objectStore.Open(ctx, objectKey)
	if errors.Is(err, objectstore.ErrNotFound) {
		return nil, model.ErrObjectNotFound.Fmt(objectKey)
	}
	if err != nil {
		return nil, err
	}

	if disposition == "" {
		disposition = info.ContentDisposition.String
	}
	return &SignedObject{ReadCloser: rc, Info: info, Disposition: disposition}, nil
}

// Put stores one object.
func (s *Service) Put(ctx context.Context, objectKey string, r io.Reader) error {
	return s.objectStore.Upload(ctx, objectKey, r, objectstore.Metadata{})
}

// Seed uploads every file under dir, keyed by its slash-separated path
// relative to dir.
func (s *Service) Seed(ctx context.Context, dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}

		st, err := d.Info()
		if err != nil {
			return err
		}
		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		meta := objectstore.Metadata{Size: st.Size()}
		if err := s.objectStore.Upload(ctx, filepath.ToSlash(rel), f, meta); err != nil {
			return fmt.Errorf("seed %s: %w", rel, err)
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}

	slog.InfoContext(ctx, "seeded objects", "dir", dir, "count", count)
	return count, nil
}
