package sdk

import (
	"context"
	"strings"
)

// ListAll returns the URLs of every object in the bucket.
func (c *Client) ListAll(ctx context.Context) ([]string, error) {
	cfg := c.snapshot()

	var urls []string
	if err := c.get(ctx, cfg, cfg.Profile.route(opListAll), nil, &urls); err != nil {
		return nil, err
	}
	return urls, nil
}

// ListByPrefix returns the URLs of the objects whose key starts with prefix.
func (c *Client) ListByPrefix(ctx context.Context, prefix string) ([]string, error) {
	cfg := c.snapshot()

	var urls []string
	query := map[string]any{"prefix": prefix}
	if err := c.get(ctx, cfg, cfg.Profile.route(opListByPrefix), query, &urls); err != nil {
		return nil, err
	}
	return urls, nil
}

// GeneratePreviewURL returns a signed URL for objectKey valid for
// expirationSeconds. Values <= 0 mean DefaultExpirationSeconds.
func (c *Client) GeneratePreviewURL(ctx context.Context, objectKey string, expirationSeconds int) (string, error) {
	if err := checkKey(objectKey); err != nil {
		return "", err
	}
	if expirationSeconds <= 0 {
		expirationSeconds = DefaultExpirationSeconds
	}
	cfg := c.snapshot()

	var u string
	query := map[string]any{
		"objectKey":         objectKey,
		"expirationSeconds": cfg.Profile.expirationQuery(expirationSeconds),
	}
	if err := c.get(ctx, cfg, cfg.Profile.route(opPreview), query, &u); err != nil {
		return "", err
	}
	return u, nil
}

// GenerateDefaultPreviewURL returns a signed URL for objectKey valid for one hour.
func (c *Client) GenerateDefaultPreviewURL(ctx context.Context, objectKey string) (string, error) {
	if err := checkKey(objectKey); err != nil {
		return "", err
	}
	cfg := c.snapshot()

	var u string
	query := map[string]any{"objectKey": objectKey}
	if err := c.get(ctx, cfg, cfg.Profile.route(opDefaultPreview), query, &u); err != nil {
		return "", err
	}
	return u, nil
}

// BatchGeneratePreviewURLs returns one signed URL per key. The result is
// index-aligned with objectKeys.
func (c *Client) BatchGeneratePreviewURLs(ctx context.Context, objectKeys []string, expirationSeconds int) ([]string, error) {
	if len(objectKeys) == 0 {
		return []string{}, nil
	}
	for _, key := range objectKeys {
		if err := checkKey(key); err != nil {
			return nil, err
		}
	}
	if expirationSeconds <= 0 {
		expirationSeconds = DefaultExpirationSeconds
	}
	cfg := c.snapshot()

	var urls []string
	query := map[string]any{"expirationSeconds": cfg.Profile.expirationQuery(expirationSeconds)}
	if err := c.post(ctx, cfg, cfg.Profile.route(opBatchPreview), objectKeys, query, &urls); err != nil {
		return nil, err
	}
	if len(urls) != len(objectKeys) {
		return nil, newDecodeError(0, "batch preview: result count does not match request", nil)
	}
	return urls, nil
}

// SetInlineContentDisposition marks objectKey to be displayed inline by
// browsers and returns the server's confirmation message.
func (c *Client) SetInlineContentDisposition(ctx context.Context, objectKey string) (string, error) {
	if err := checkKey(objectKey); err != nil {
		return "", err
	}
	cfg := c.snapshot()
	rt := cfg.Profile.route(opSetInline)

	var msg string
	if cfg.Profile.enveloped() {
		query := map[string]any{"objectKey": objectKey}
		if err := c.post(ctx, cfg, rt, nil, query, &msg); err != nil {
			return "", err
		}
		return msg, nil
	}

	req := request{route: rt, path: rt.path + "/" + escapeKey(objectKey)}
	if err := c.do(ctx, cfg, req, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

// GetFileInfo returns the metadata of objectKey.
func (c *Client) GetFileInfo(ctx context.Context, objectKey string) (*FileInfo, error) {
	if err := checkKey(objectKey); err != nil {
		return nil, err
	}
	cfg := c.snapshot()

	var info FileInfo
	query := map[string]any{"objectKey": objectKey}
	if err := c.get(ctx, cfg, cfg.Profile.route(opFileInfo), query, &info); err != nil {
		return nil, err
	}
	if info.Key == "" {
		info.Key = objectKey
	}
	return &info, nil
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return invalidInput("object key is required")
	}
	return nil
}
