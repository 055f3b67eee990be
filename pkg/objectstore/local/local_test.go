package local

import (
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanbocchi/ossclient/pkg/objectstore"
)

func newStore(t *testing.T) *ClientImpl {
	t.Helper()
	c, err := NewClient(LocalConfig{
		Root:      t.TempDir(),
		PublicURL: "https://bucket.oss.local/",
		SignedURL: "http://localhost:8088/files",
		Secret:    "test-secret",
	})
	require.NoError(t, err)
	return c
}

func upload(t *testing.T, c *ClientImpl, key, content string) {
	t.Helper()
	require.NoError(t, c.Upload(context.Background(), key, strings.NewReader(content), objectstore.Metadata{}))
}

func TestUploadSizeMismatch(t *testing.T) {
	c := newStore(t)
	ctx := context.Background()

	err := c.Upload(ctx, "short.txt", strings.NewReader("meow"), objectstore.Metadata{Size: 10})
	require.ErrorIs(t, err, objectstore.ErrSizeMismatch)

	_, err = c.Stat(ctx, "short.txt")
	assert.ErrorIs(t, err, objectstore.ErrNotFound)

	require.NoError(t, c.Upload(ctx, "exact.txt", strings.NewReader("meow"), objectstore.Metadata{Size: 4}))
	info, err := c.Stat(ctx, "exact.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(4), info.Size)
}

func TestUploadStatOpen(t *testing.T) {
	c := newStore(t)
	ctx := context.Background()
	upload(t, c, "images/cat.png", "meow")

	info, err := c.Stat(ctx, "images/cat.png")
	require.NoError(t, err)
	assert.Equal(t, int64(4), info.Size)
	assert.Equal(t, "image/png", info.ContentType.String)
	assert.False(t, info.ContentDisposition.Valid)
	assert.Len(t, info.ETag, 64)

	rc, err := c.Open(ctx, "images/cat.png")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "meow", string(data))

	_, err = c.Stat(ctx, "images/dog.png")
	assert.True(t, errors.Is(err, objectstore.ErrNotFound))
	_, err = c.Open(ctx, "images/dog.png")
	assert.True(t, errors.Is(err, objectstore.ErrNotFound))
}

func TestKeysStayInsideRoot(t *testing.T) {
	c := newStore(t)
	upload(t, c, "../../escape.txt", "x")

	_, err := os.Stat(filepath.Join(c.root, "escape.txt"))
	assert.NoError(t, err)
}

func TestListObjects(t *testing.T) {
	c := newStore(t)
	for _, k := range []string{"a/1.png", "a/2.png", "b/3.mp4", "c.txt"} {
		upload(t, c, k, k)
	}
	// A half-written upload is never listed.
	require.NoError(t, os.WriteFile(filepath.Join(c.root, "a", "9.png"+tmpSuffix), []byte("x"), 0o644))

	all, err := c.ListObjects(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/1.png", "a/2.png", "b/3.mp4", "c.txt"}, all)

	prefixed, err := c.ListObjects(context.Background(), "a/", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/1.png", "a/2.png"}, prefixed)

	capped, err := c.ListObjects(context.Background(), "", 3)
	require.NoError(t, err)
	assert.Len(t, capped, 3)
}

func TestPresignedURL(t *testing.T) {
	c := newStore(t)
	now := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return now }

	raw, err := c.GetPresignedURL(context.Background(), "docs/a b.pdf", time.Hour,
		objectstore.WithResponseDisposition(objectstore.DispositionInline))
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/files/docs/a b.pdf", u.Path)
	assert.Equal(t, "1700003600", u.Query().Get(QueryExpires))

	disposition, err := c.VerifyPresigned("docs/a b.pdf", u.Query())
	require.NoError(t, err)
	assert.Equal(t, objectstore.DispositionInline, disposition)

	// Tampering with the disposition breaks the signature.
	q := u.Query()
	q.Set(QueryDisposition, "attachment")
	_, err = c.VerifyPresigned("docs/a b.pdf", q)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = c.VerifyPresigned("docs/other.pdf", u.Query())
	assert.ErrorIs(t, err, ErrInvalidSignature)

	now = now.Add(2 * time.Hour)
	_, err = c.VerifyPresigned("docs/a b.pdf", u.Query())
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = c.GetPresignedURL(context.Background(), "a.png", 0)
	assert.Error(t, err)
}

func TestGetURL(t *testing.T) {
	c := newStore(t)
	u, err := c.GetURL(context.Background(), "images/cat 1.png")
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.oss.local/images/cat%201.png", u)
}

func TestUpdateMetadataAndDelete(t *testing.T) {
	c := newStore(t)
	ctx := context.Background()
	upload(t, c, "docs/r.pdf", "pdf")

	require.NoError(t, c.UpdateMetadata(ctx, "docs/r.pdf", objectstore.Metadata{ContentDisposition: objectstore.DispositionInline}))
	info, err := c.Stat(ctx, "docs/r.pdf")
	require.NoError(t, err)
	assert.Equal(t, "inline", info.ContentDisposition.String)
	assert.Equal(t, "application/pdf", info.ContentType.String)

	err = c.UpdateMetadata(ctx, "docs/missing.pdf", objectstore.Metadata{ContentDisposition: "inline"})
	assert.ErrorIs(t, err, objectstore.ErrNotFound)

	require.NoError(t, c.Delete(ctx, "docs/r.pdf"))
	require.NoError(t, c.Delete(ctx, "docs/r.pdf"))
	_, err = c.Stat(ctx, "docs/r.pdf")
	assert.ErrorIs(t, err, objectstore.ErrNotFound)
}
