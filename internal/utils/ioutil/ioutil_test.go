package ioutil

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeReader(t *testing.T) {
	r := NewSizeReader(strings.NewReader("hello world"))
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
	assert.Equal(t, int64(11), r.Size)
}

func TestSizeWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewSizeWriter(&buf)
	assert.False(t, w.Touched())

	_, err := io.Copy(w, strings.NewReader("abc"))
	require.NoError(t, err)
	assert.True(t, w.Touched())
	assert.Equal(t, int64(3), w.Size)
	assert.Equal(t, "abc", buf.String())
}

func TestLockedReadCloser(t *testing.T) {
	var mu sync.RWMutex
	mu.RLock()

	rc := NewLockedReadCloser(io.NopCloser(strings.NewReader("x")), &mu)
	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close())

	// Both read locks gone: a writer can take the lock.
	assert.True(t, mu.TryLock())
	mu.Unlock()
}
