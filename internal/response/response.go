package response

import (
	"github.com/asukiaaa/iron/internal/headers"
)

// Response is the internal representation of one outbound HTTP response.
// A handler builds exactly one per call; the server writes it back to the
// transport and discards it. What it carries is what goes on the wire:
// the server never adds to or edits a handler's Response.
type Response struct {
	StatusCode StatusCode
	Headers    headers.Headers
	Body       []byte
}

// New builds an empty Response with the given status.
func New(code StatusCode) *Response {
	return &Response{
		StatusCode: code,
		Headers:    headers.NewHeaders(),
	}
}

// Text builds a plain-text Response.
func Text(code StatusCode, body string) *Response {
	r := New(code)
	r.Headers.SetNew("content-type", "text/plain")
	r.Body = []byte(body)
	return r
}

// HTML builds an HTML Response.
func HTML(code StatusCode, body []byte) *Response {
	r := New(code)
	r.Headers.SetNew("content-type", "text/html")
	r.Body = body
	return r
}
