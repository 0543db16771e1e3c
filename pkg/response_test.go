package pkg

import (
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestHttpResponseWriter struct {
	HeaderMap  http.Header
	Body       []byte
	StatusCode int
}

func (w *TestHttpResponseWriter) Header() http.Header {
	return w.HeaderMap
}

func (w *TestHttpResponseWriter) Write(bytes []byte) (int, error) {
	w.Body = bytes
	return len(bytes), nil
}

func (w *TestHttpResponseWriter) WriteHeader(statusCode int) {
	w.StatusCode = statusCode
}

func TestWriteResponseBytes(t *testing.T) {
	w := &TestHttpResponseWriter{
		HeaderMap: make(http.Header),
	}

	WriteResponseBytes(w, ContentType.Text, []byte("test message"), http.StatusAccepted)
	assert.Equal(t, "test message", string(w.Body))
	assert.Equal(t, http.StatusAccepted, w.StatusCode)
	assert.Equal(t, ContentType.Text, w.HeaderMap.Get("Content-Type"))
}

func TestWriteJSON(t *testing.T) {
	w := &TestHttpResponseWriter{
		HeaderMap: make(http.Header),
	}

	require.NoError(t, WriteJSON(w, map[string]int{"rank": 1}, http.StatusOK))
	assert.Equal(t, `{"rank":1}`, string(w.Body))

	w = &TestHttpResponseWriter{
		HeaderMap: make(http.Header),
	}
	assert.Error(t, WriteJSON(w, math.Inf(1), http.StatusOK))
	assert.Nil(t, w.Body)
	assert.Zero(t, w.StatusCode)
}
