package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/guregu/null/v6"

	"github.com/beanbocchi/ossclient/internal/utils/blake3"
	"github.com/beanbocchi/ossclient/internal/utils/ioutil"
	"github.com/beanbocchi/ossclient/pkg/fileutil"
	"github.com/beanbocchi/ossclient/pkg/objectstore"
)

const (
	QueryExpires     = "expires"
	QuerySignature   = "signature"
	QueryDisposition = "response-content-disposition"

	tmpSuffix = ".tmp"
)

var ErrInvalidSignature = errors.New("invalid or expired signature")

type ClientImpl struct {
	root      string
	publicURL string
	signedURL string
	secret    string
	locks     sync.Map // map[string]*sync.RWMutex
	meta      sync.Map // map[string]objectstore.Metadata
	now       func() time.Time
}

type LocalConfig struct {
	// Root is the base directory where objects are stored on disk (e.g., ./data)
	Root string
	// PublicURL prefixes keys in GetURL, e.g. https://bucket.oss-cn-hangzhou.aliyuncs.com
	PublicURL string
	// SignedURL prefixes keys in presigned URLs, e.g. http://localhost:8088/files
	SignedURL string
	// Secret keys the presign signatures.
	Secret string
}

func NewClient(cfg LocalConfig) (*ClientImpl, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("local root is required")
	}
	if cfg.Secret == "" {
		return nil, fmt.Errorf("local secret is required")
	}
	if err := os.MkdirAll(cfg.Root, 0o755); err != nil {
		return nil, fmt.Errorf("create root: %w", err)
	}
	return &ClientImpl{
		root:      cfg.Root,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		signedURL: strings.TrimRight(cfg.SignedURL, "/"),
		secret:    cfg.Secret,
		now:       time.Now,
	}, nil
}

// SetSignedURL changes the prefix of presigned URLs. Servers bound to a
// random port call it once the address is known.
func (c *ClientImpl) SetSignedURL(u string) {
	c.signedURL = strings.TrimRight(u, "/")
}

func (c *ClientImpl) fullPath(key string) string {
	// Rooting the key before cleaning keeps ".." inside c.root.
	clean := path.Clean("/" + key)
	return filepath.Join(c.root, filepath.FromSlash(clean))
}

func (c *ClientImpl) lock(key string) *sync.RWMutex {
	l, _ := c.locks.LoadOrStore(key, &sync.RWMutex{})
	return l.(*sync.RWMutex)
}

func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func (c *ClientImpl) GetURL(ctx context.Context, key string) (string, error) {
	_ = ctx
	if c.publicURL == "" {
		return "", fmt.Errorf("public url not configured for local objectstore")
	}
	return fmt.Sprintf("%s/%s", c.publicURL, escapeKey(key)), nil
}

func (c *ClientImpl) GetPresignedURL(ctx context.Context, key string, expireIn time.Duration, opts ...objectstore.PresignOption) (string, error) {
	_ = ctx
	if c.signedURL == "" {
		return "", fmt.Errorf("signed url not configured for local objectstore")
	}
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("object key is required")
	}
	if expireIn <= 0 {
		return "", fmt.Errorf("expiration must be positive, got %s", expireIn)
	}
	o := objectstore.ApplyPresignOptions(opts...)

	expires := strconv.FormatInt(c.now().Add(expireIn).Unix(), 10)
	q := url.Values{}
	q.Set(QueryExpires, expires)
	if o.ResponseDisposition != "" {
		q.Set(QueryDisposition, o.ResponseDisposition)
	}
	q.Set(QuerySignature, blake3.Sign(c.secret, key, expires, o.ResponseDisposition))

	return fmt.Sprintf("%s/%s?%s", c.signedURL, escapeKey(key), q.Encode()), nil
}

// VerifyPresigned checks the query of a URL made by GetPresignedURL and
// returns the disposition it was signed with.
func (c *ClientImpl) VerifyPresigned(key string, q url.Values) (string, error) {
	expires := q.Get(QueryExpires)
	unix, err := strconv.ParseInt(expires, 10, 64)
	if err != nil {
		return "", ErrInvalidSignature
	}
	if c.now().Unix() > unix {
		return "", ErrInvalidSignature
	}
	disposition := q.Get(QueryDisposition)
	if !blake3.Verify(q.Get(QuerySignature), c.secret, key, expires, disposition) {
		return "", ErrInvalidSignature
	}
	return disposition, nil
}

func (c *ClientImpl) ListObjects(ctx context.Context, prefix string, limit int) ([]string, error) {
	_ = ctx
	var keys []string
	errLimit := errors.New("limit reached")

	err := filepath.WalkDir(c.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasSuffix(p, tmpSuffix) {
			return nil
		}
		rel, err := filepath.Rel(c.root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !strings.HasPrefix(rel, prefix) {
			return nil
		}
		keys = append(keys, rel)
		if limit > 0 && len(keys) >= limit {
			return errLimit
		}
		return nil
	})
	if err != nil && !errors.Is(err, errLimit) {
		return nil, err
	}
	return keys, nil
}

func (c *ClientImpl) Stat(ctx context.Context, key string) (*objectstore.ObjectInfo, error) {
	_ = ctx
	l := c.lock(key)
	l.RLock()
	defer l.RUnlock()

	f, err := os.Open(c.fullPath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", objectstore.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%w: %s", objectstore.ErrNotFound, key)
	}
	etag, err := blake3.Compute(f)
	if err != nil {
		return nil, fmt.Errorf("hash file: %w", err)
	}

	meta := c.metadata(key)
	return &objectstore.ObjectInfo{
		Key:                key,
		Size:               st.Size(),
		ContentType:        null.NewString(meta.ContentType, meta.ContentType != ""),
		ContentDisposition: null.NewString(meta.ContentDisposition, meta.ContentDisposition != ""),
		LastModified:       st.ModTime(),
		ETag:               etag,
	}, nil
}

func (c *ClientImpl) metadata(key string) objectstore.Metadata {
	if m, ok := c.meta.Load(key); ok {
		return m.(objectstore.Metadata)
	}
	return objectstore.Metadata{ContentType: fileutil.ContentType(key)}
}

func (c *ClientImpl) UpdateMetadata(ctx context.Context, key string, meta objectstore.Metadata) error {
	_ = ctx
	l := c.lock(key)
	l.Lock()
	defer l.Unlock()

	if _, err := os.Stat(c.fullPath(key)); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", objectstore.ErrNotFound, key)
	}

	cur := c.metadata(key)
	if meta.ContentType != "" {
		cur.ContentType = meta.ContentType
	}
	if meta.ContentDisposition != "" {
		cur.ContentDisposition = meta.ContentDisposition
	}
	c.meta.Store(key, cur)
	return nil
}

func (c *ClientImpl) Upload(ctx context.Context, key string, reader io.Reader, meta objectstore.Metadata) error {
	_ = ctx
	l := c.lock(key)
	l.Lock()
	defer l.Unlock()

	p := c.fullPath(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	//! Write to temp file first, then rename, so a failed write never leaves a partial object.
	tmpPath := p + tmpSuffix
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	sr := ioutil.NewSizeReader(reader)
	if _, err := io.Copy(f, sr); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write file: %w", err)
	}
	if meta.Size > 0 && sr.Size != meta.Size {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s got %d of %d bytes", objectstore.ErrSizeMismatch, key, sr.Size, meta.Size)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close file: %w", err)
	}

	if err := os.Rename(tmpPath, p); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename file: %w", err)
	}

	if meta.ContentType == "" {
		meta.ContentType = fileutil.ContentType(key)
	}
	c.meta.Store(key, meta)
	return nil
}

// Open returns the object content. The object cannot be replaced or
// deleted until the reader is closed.
func (c *ClientImpl) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	_ = ctx
	l := c.lock(key)
	l.RLock()

	file, err := os.Open(c.fullPath(key))
	if err != nil {
		l.RUnlock()
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", objectstore.ErrNotFound, key)
		}
		return nil, fmt.Errorf("open file: %w", err)
	}

	return ioutil.NewLockedReadCloser(file, l), nil
}

func (c *ClientImpl) Delete(ctx context.Context, key string) error {
	_ = ctx
	l := c.lock(key)
	l.Lock()
	defer l.Unlock()

	if err := os.Remove(c.fullPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	c.meta.Delete(key)
	return nil
}

var _ objectstore.Client = (*ClientImpl)(nil)
