package response

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingSink accepts the status line and headers, then refuses the body.
type failingSink struct {
	header http.Header
	status int
}

func (s *failingSink) Header() http.Header {
	if s.header == nil {
		s.header = http.Header{}
	}
	return s.header
}

func (s *failingSink) WriteHeader(code int) { s.status = code }

func (s *failingSink) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("broken pipe")
}

func TestWriteBack(t *testing.T) {
	// Test: status, headers, and body all reach the sink untouched
	r := New(StatusCode(201))
	r.Headers.SetNew("content-type", "application/json")
	r.Headers.SetNew("x-request-id", "abc123")
	r.Body = []byte(`{"created":true}`)

	w := httptest.NewRecorder()
	require.NoError(t, r.WriteBack(w))
	assert.Equal(t, 201, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "abc123", w.Header().Get("X-Request-Id"))
	assert.Equal(t, `{"created":true}`, w.Body.String())

	// Test: field-names come out in canonical Title-Case
	_, ok := w.Header()["X-Request-Id"]
	assert.True(t, ok)

	// Test: the zero status falls back to 200
	w = httptest.NewRecorder()
	require.NoError(t, (&Response{}).WriteBack(w))
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, 0, w.Body.Len())

	// Test: a status that cannot go on the wire is refused before
	// anything is written
	w = httptest.NewRecorder()
	bad := &Response{StatusCode: 42, Headers: map[string]string{"x-late": "never"}}
	err := bad.WriteBack(w)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Empty(t, w.Header())
	assert.Equal(t, 0, w.Body.Len())

	// Test: a body write failure is reported, not swallowed
	sink := &failingSink{}
	err = Text(StatusOK, "hello").WriteBack(sink)
	require.Error(t, err)
	assert.Equal(t, 200, sink.status)
}

func TestConstructors(t *testing.T) {
	// Test: New carries the status and a usable header map
	r := New(StatusBadRequest)
	assert.Equal(t, StatusBadRequest, r.StatusCode)
	require.NotNil(t, r.Headers)
	assert.Empty(t, r.Body)

	// Test: Text stamps the plain-text content type
	r = Text(StatusOK, "hello")
	assert.Equal(t, "text/plain", r.Headers.Get("content-type"))
	assert.Equal(t, "hello", string(r.Body))

	// Test: HTML stamps the html content type
	r = HTML(StatusNotFound, []byte("<h1>gone</h1>"))
	assert.Equal(t, "text/html", r.Headers.Get("content-type"))
	assert.Equal(t, StatusNotFound, r.StatusCode)
}

func TestStatusCodeString(t *testing.T) {
	assert.Equal(t, "200 OK", StatusOK.String())
	assert.Equal(t, "500 Internal Server Error", StatusInternalServerError.String())
	assert.Equal(t, "299", StatusCode(299).String())
}
