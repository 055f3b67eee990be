package progressr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 8)
	assert.Zero(t, w.Progress())

	_, err := w.Write([]byte("abcd"))
	require.NoError(t, err)
	assert.Equal(t, 0.5, w.Progress())
	assert.Equal(t, int64(4), w.Written())

	_, err = w.Write([]byte("efghij"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, w.Progress())
	assert.Equal(t, "abcdefghij", buf.String())

	assert.Zero(t, NewWriter(&buf, 0).Progress())
}
