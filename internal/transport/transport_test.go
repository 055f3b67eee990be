package transport_test

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanbocchi/ossclient/internal/transport/transporttest"
	"github.com/beanbocchi/ossclient/pkg/response"
)

func get(t *testing.T, u string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func post(t *testing.T, u, body string) (int, []byte) {
	t.Helper()
	resp, err := http.Post(u, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decodeEnvelope[T any](t *testing.T, body []byte) response.Envelope[T] {
	t.Helper()
	var env response.Envelope[T]
	require.NoError(t, sonic.Unmarshal(body, &env))
	return env
}

func TestHealth(t *testing.T) {
	srv := transporttest.NewServer(t)
	status, body := get(t, srv.URL+"/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "ok")
}

func TestEnvelopedList(t *testing.T) {
	srv := transporttest.NewServer(t)
	srv.Put(t, map[string]string{"img/a.png": "a", "doc/b.pdf": "b"})

	status, body := get(t, srv.EnvelopedURL()+"/getAllOsss")
	require.Equal(t, http.StatusOK, status)
	env := decodeEnvelope[[]string](t, body)
	assert.Equal(t, null.IntFrom(0), env.Code)
	assert.Equal(t, []string{
		transporttest.PublicURL + "/doc/b.pdf",
		transporttest.PublicURL + "/img/a.png",
	}, env.Data)

	status, body = get(t, srv.EnvelopedURL()+"/getOsssByPrefix?prefix=img/")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{transporttest.PublicURL + "/img/a.png"}, decodeEnvelope[[]string](t, body).Data)
}

func TestEnvelopedValidation(t *testing.T) {
	srv := transporttest.NewServer(t)

	status, body := get(t, srv.EnvelopedURL()+"/generatePreviewUrl")
	assert.Equal(t, http.StatusBadRequest, status)
	env := decodeEnvelope[any](t, body)
	assert.Equal(t, null.IntFrom(http.StatusBadRequest), env.Code)
	assert.Contains(t, env.Message, "objectKey")

	status, _ = get(t, srv.EnvelopedURL()+"/generatePreviewUrl?objectKey=a.png&expirationSeconds=-5")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestEnvelopedFileInfoFailureKeepsStatusOK(t *testing.T) {
	srv := transporttest.NewServer(t)

	status, body := get(t, srv.EnvelopedURL()+"/getOssInfoByKey?objectKey=missing.png")
	assert.Equal(t, http.StatusOK, status)
	env := decodeEnvelope[any](t, body)
	assert.Equal(t, null.IntFrom(http.StatusInternalServerError), env.Code)
	assert.Equal(t, "get file info failed: object missing.png not found", env.Message)
}

func TestPlainPreviewIsText(t *testing.T) {
	srv := transporttest.NewServer(t)

	status, body := get(t, srv.PlainURL()+"/preview-url?objectKey=img/a.png&expirationSeconds=60")
	require.Equal(t, http.StatusOK, status)
	u, err := url.Parse(string(body))
	require.NoError(t, err)
	assert.Equal(t, "/files/img/a.png", u.Path)
	assert.Equal(t, "inline", u.Query().Get("response-content-disposition"))
}

func TestPlainBatchAndSetInline(t *testing.T) {
	srv := transporttest.NewServer(t)
	srv.Put(t, map[string]string{"docs/a b.pdf": "pdf"})

	status, body := post(t, srv.PlainURL()+"/batch-preview-urls?expirationSeconds=30", `["x.png","y.png"]`)
	require.Equal(t, http.StatusOK, status)
	var urls []string
	require.NoError(t, sonic.Unmarshal(body, &urls))
	require.Len(t, urls, 2)
	assert.Contains(t, urls[0], "/files/x.png?")
	assert.Contains(t, urls[1], "/files/y.png?")

	status, body = post(t, srv.PlainURL()+"/set-inline/docs/a%20b.pdf", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "object docs/a b.pdf set to inline preview", string(body))

	status, _ = post(t, srv.PlainURL()+"/set-inline/docs/missing.pdf", "")
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestServeSigned(t *testing.T) {
	srv := transporttest.NewServer(t)
	srv.Put(t, map[string]string{"img/a.png": "png-bytes"})

	_, body := get(t, srv.EnvelopedURL()+"/generateDefaultPreviewUrl?objectKey=img/a.png")
	signed := decodeEnvelope[string](t, body).Data

	resp, err := http.Get(signed)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, "inline", resp.Header.Get("Content-Disposition"))

	status, _ := get(t, srv.URL+"/files/img/a.png?expires=1&signature=bad")
	assert.Equal(t, http.StatusForbidden, status)
}
