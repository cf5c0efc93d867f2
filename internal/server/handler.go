package server

import (
	"github.com/asukiaaa/iron/internal/request"
	"github.com/asukiaaa/iron/internal/response"
)

// Handler is the single unit of application logic a Server dispatches to.
//
// Call consumes one Request and produces exactly one Response or one
// error. The server invokes Call concurrently, from one goroutine per
// in-flight request, each with its own Request, so implementations must
// be safe to share without external locking. A Request must not be
// retained after Call returns.
type Handler interface {
	Call(req *request.Request) (*response.Response, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(req *request.Request) (*response.Response, error)

// Call invokes f.
func (f HandlerFunc) Call(req *request.Request) (*response.Response, error) {
	return f(req)
}
