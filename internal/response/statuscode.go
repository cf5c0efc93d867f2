package response

import (
	"net/http"
	"strconv"
)

type StatusCode int

const (
	StatusOK                  StatusCode = 200
	StatusBadRequest          StatusCode = 400
	StatusNotFound            StatusCode = 404
	StatusInternalServerError StatusCode = 500
)

// String renders the code with its canonical reason phrase, e.g.
// "404 Not Found". Codes without a registered phrase render bare.
func (c StatusCode) String() string {
	text := http.StatusText(int(c))
	if text == "" {
		return strconv.Itoa(int(c))
	}
	return strconv.Itoa(int(c)) + " " + text
}
