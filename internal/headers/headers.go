package headers

import (
	"net/http"
	"strings"
)

// Headers holds HTTP header fields keyed by lowercased field-name.
type Headers map[string]string

func NewHeaders() Headers {
	return map[string]string{}
}

// FromHTTP flattens a raw transport header map into Headers. Repeated
// fields collapse into one entry, joined with ", " in the order the
// transport recorded the values.
func FromHTTP(src http.Header) Headers {
	h := NewHeaders()
	for key, values := range src {
		for _, value := range values {
			h.Set(key, value)
		}
	}
	return h
}

func (h Headers) Set(key, value string) {
	key = strings.ToLower(key)
	if _, ok := h[key]; ok {
		h[key] += ", " + value
		return
	}
	h[key] = value
}

func (h Headers) SetNew(key, value string) {
	key = strings.ToLower(key)
	h[key] = value
}

func (h Headers) Get(key string) (value string) {
	key = strings.ToLower(key)
	if v, ok := h[key]; ok {
		return v
	}
	return ""
}

func (h Headers) Del(key string) {
	key = strings.ToLower(key)
	delete(h, key)
}
