package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/asukiaaa/iron/internal/request"
	"github.com/asukiaaa/iron/internal/response"
)

// errorBody is the fixed fallback body written whenever adaptation or
// handling fails. Both failure kinds look identical on the wire.
const errorBody = "Internal Server Error"

// readHeaderTimeout bounds how long the transport waits for request
// headers. Transport configuration only: a slow handler still blocks its
// own connection indefinitely.
const readHeaderTimeout = 5 * time.Second

// Server owns a single Handler and dispatches every inbound request to
// it. Build one with New, then call Listen exactly once.
type Server struct {
	// Handler receives every request. Required.
	Handler Handler
	// Logger records dispatch failures. Set it at process start, before
	// Listen; nil falls back to slog.Default.
	Logger *slog.Logger
}

// New wraps handler in a Server.
func New(handler Handler) *Server {
	return &Server{Handler: handler}
}

// Listen binds ip:port and serves requests through the Server's handler.
//
// Call this once as the final step of program startup: it blocks for the
// life of the process and returns only when the underlying transport's
// serve loop exits, e.g. because the address cannot be bound.
func (s *Server) Listen(ip string, port int) error {
	if s.Handler == nil {
		return errors.New("handler is required")
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpServer := &http.Server{
		Addr:              net.JoinHostPort(ip, strconv.Itoa(port)),
		Handler:           &dispatcher{handler: s.Handler, logger: logger},
		ReadHeaderTimeout: readHeaderTimeout,
	}
	if err := httpServer.ListenAndServe(); err != nil {
		return fmt.Errorf("serve on %s: %w", httpServer.Addr, err)
	}
	return nil
}

// dispatcher implements the transport's per-request callback. One value
// is shared by every connection goroutine; its fields never change after
// construction, so sharing the handler needs no synchronization.
type dispatcher struct {
	handler Handler
	logger  *slog.Logger
}

// ServeHTTP adapts one raw request, dispatches it, and answers the
// connection exactly once. No failure escapes this callback.
func (d *dispatcher) ServeHTTP(w http.ResponseWriter, raw *http.Request) {
	req, err := request.FromHTTP(raw)
	if err != nil {
		d.logger.Error("error adapting request", "error", err)
		d.internalServerError(w)
		return
	}

	resp, err := d.call(req)
	if err != nil {
		d.logger.Error("error handling request", "request", req.String(), "error", err)
		d.internalServerError(w)
		return
	}

	if err := resp.WriteBack(w); err != nil {
		if errors.Is(err, response.ErrInvalidStatus) {
			// Nothing reached the wire yet, so the connection can still
			// get the uniform failure answer.
			d.logger.Error("error handling request", "request", req.String(), "error", err)
			d.internalServerError(w)
			return
		}
		// Mid-write failure: the response is already committed, so log
		// and never attempt a second answer.
		d.logger.Error("error writing response", "request", req.String(), "error", err)
	}
}

// call runs the handler, converting an escaped panic or a nil result
// into an ordinary handler error so the one-answer-per-connection
// invariant survives misbehaving handlers.
func (d *dispatcher) call(req *request.Request) (resp *response.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	resp, err = d.handler.Call(req)
	if err == nil && resp == nil {
		return nil, errors.New("handler returned no response")
	}
	return resp, err
}

func (d *dispatcher) internalServerError(w http.ResponseWriter) {
	w.WriteHeader(int(response.StatusInternalServerError))
	if _, err := w.Write([]byte(errorBody)); err != nil {
		d.logger.Error("error writing error response", "error", err)
	}
}
