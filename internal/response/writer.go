package response

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidStatus reports a Response whose status code cannot go on the
// wire. WriteBack returns it before anything is written, so the caller
// may still answer the connection another way.
var ErrInvalidStatus = errors.New("invalid status code")

// WriteBack translates the Response onto the raw transport sink in wire
// order: status line, then headers, then body. Header fields are staged
// on the sink before the status is committed, which is how the transport
// serializes that order. A body write failure is returned for logging
// only; by then the connection is mid-write and no second response may
// be attempted.
func (r *Response) WriteBack(w http.ResponseWriter) error {
	code := int(r.StatusCode)
	if code == 0 {
		// Unspecified status means the transport default, like a raw
		// sink that was never given an explicit status line.
		code = int(StatusOK)
	}
	if code < 100 || code > 999 {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, r.StatusCode)
	}

	caser := cases.Title(language.English)
	dst := w.Header()
	for k, v := range r.Headers {
		dst[caser.String(k)] = []string{v}
	}

	w.WriteHeader(code)

	if len(r.Body) == 0 {
		return nil
	}
	if _, err := w.Write(r.Body); err != nil {
		return fmt.Errorf("error writing body: %w", err)
	}
	return nil
}
