package request

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/asukiaaa/iron/internal/headers"
)

// RequestLine carries the request line of one inbound request as the
// transport parsed it.
type RequestLine struct {
	HttpVersion   string
	RequestTarget string
	Method        string
}

// Request is the internal representation of one inbound HTTP request.
// Each dispatch invocation owns its Request exclusively; it is built
// fresh by FromHTTP and discarded once the handler returns.
type Request struct {
	RequestLine RequestLine
	Headers     headers.Headers
	Body        []byte
	RemoteAddr  string
}

// FromHTTP translates a raw transport request into a Request. Malformed
// raw input is rejected with a descriptive error; a partial Request is
// never returned.
func FromHTTP(src *http.Request) (*Request, error) {
	if src == nil {
		return nil, fmt.Errorf("no request to adapt")
	}

	rl, err := requestLineFromRaw(src)
	if err != nil {
		return nil, err
	}

	h := headers.FromHTTP(src.Header)
	// The transport hoists Host out of the header map; put it back so
	// handlers see the complete field set.
	if src.Host != "" && h.Get("host") == "" {
		h.SetNew("host", src.Host)
	}

	var body []byte
	if src.Body != nil {
		body, err = io.ReadAll(src.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading body: %w", err)
		}
	}

	return &Request{
		RequestLine: rl,
		Headers:     h,
		Body:        body,
		RemoteAddr:  src.RemoteAddr,
	}, nil
}

func requestLineFromRaw(src *http.Request) (RequestLine, error) {
	method := src.Method
	if method == "" {
		return RequestLine{}, fmt.Errorf("missing method")
	}
	for _, c := range method {
		if c < 'A' || c > 'Z' {
			return RequestLine{}, fmt.Errorf("invalid method: %s", method)
		}
	}

	target := src.RequestURI
	if target == "" && src.URL != nil {
		target = src.URL.RequestURI()
	}
	if target == "" {
		return RequestLine{}, fmt.Errorf("missing request target")
	}

	protocol, version, ok := strings.Cut(src.Proto, "/")
	if !ok || protocol != "HTTP" || version == "" {
		return RequestLine{}, fmt.Errorf("invalid HTTP version: %s", src.Proto)
	}

	return RequestLine{
		Method:        method,
		RequestTarget: target,
		HttpVersion:   version,
	}, nil
}

// String renders the request line and origin, for failure logs.
func (r *Request) String() string {
	return fmt.Sprintf("%s %s HTTP/%s from %s",
		r.RequestLine.Method, r.RequestLine.RequestTarget, r.RequestLine.HttpVersion, r.RemoteAddr)
}
