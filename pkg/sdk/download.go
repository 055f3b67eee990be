package sdk

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/beanbocchi/ossclient/internal/utils/blake3"
	"github.com/beanbocchi/ossclient/internal/utils/ioutil"
)

// DownloadResult describes a finished download.
type DownloadResult struct {
	URL         string
	Bytes       int64
	ContentType string
	// Hash is the hex blake3 digest of the downloaded bytes.
	Hash string
}

// Download streams objectKey into dst through a default preview URL.
// Failed attempts are retried only while nothing has been written to dst.
// The transfer itself is bounded by ctx, not by the client timeout.
func (c *Client) Download(ctx context.Context, objectKey string, dst io.Writer) (*DownloadResult, error) {
	u, err := c.GenerateDefaultPreviewURL(ctx, objectKey)
	if err != nil {
		return nil, err
	}
	cfg := c.snapshot()

	w := ioutil.NewSizeWriter(dst)
	res := &DownloadResult{URL: u}
	err = c.retry(ctx, cfg, http.MethodGet, u, func() error {
		return c.fetch(ctx, u, w, res)
	}, func(error) bool {
		return w.Touched()
	})
	if err != nil {
		return nil, err
	}

	res.Bytes = w.Size
	return res, nil
}

func (c *Client) fetch(ctx context.Context, u string, w io.Writer, res *DownloadResult) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(u)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("GET %s", u), Cause: err}
	}
	body := resp.RawBody()
	defer body.Close()

	if !resp.IsSuccess() {
		msg, _ := io.ReadAll(io.LimitReader(body, 4<<10))
		return newHTTPError(resp.StatusCode(), msg)
	}

	digest := blake3.NewDigest()
	if _, err := io.Copy(io.MultiWriter(w, digest), body); err != nil {
		return &Error{Kind: KindNetwork, StatusCode: resp.StatusCode(), Message: "download body", Cause: err}
	}

	res.ContentType = resp.Header().Get("Content-Type")
	res.Hash = digest.Hex()
	return nil
}
