package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeResult(t *testing.T) {
	ok := Envelope[[]string]{Code: null.IntFrom(0), Data: []string{"a"}, Message: "success"}.Result()
	assert.True(t, ok.OK)
	assert.Equal(t, []string{"a"}, ok.Data)

	failed := Envelope[[]string]{Code: null.IntFrom(500), Data: []string{"ignored"}, Message: "boom"}.Result()
	assert.False(t, failed.OK)
	assert.Nil(t, failed.Data)
	assert.Equal(t, "boom", failed.Message)
}

func TestEnvelopeWithoutCode(t *testing.T) {
	for _, body := range []string{`{"message":"internal failure"}`, `{}`, `{"code":null,"data":["a"]}`} {
		var env Envelope[[]string]
		require.NoError(t, sonic.UnmarshalString(body, &env))

		res := env.Result()
		assert.False(t, res.OK, body)
		assert.Nil(t, res.Data, body)
	}
}

func TestFromDTO(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, FromDTO(rec, http.StatusOK, []string{"x", "y"}))

	var env Envelope[[]string]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, null.IntFrom(0), env.Code)
	assert.Equal(t, []string{"x", "y"}, env.Data)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestFromError(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, FromError(rec, http.StatusNotFound, errors.New("missing")))

	var env Envelope[any]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, null.IntFrom(http.StatusNotFound), env.Code)
	assert.Equal(t, "missing", env.Message)
	assert.Nil(t, env.Data)
}

func TestText(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, Text(rec, http.StatusOK, "https://example/a.png"))
	assert.Equal(t, "https://example/a.png", rec.Body.String())
}
