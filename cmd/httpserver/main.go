package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/asukiaaa/iron/internal/request"
	"github.com/asukiaaa/iron/internal/response"
	"github.com/asukiaaa/iron/internal/server"
)

// config holds the demo binary's settings. The server core itself reads
// no environment; this surface belongs to the binary alone.
type config struct {
	Host  string `env:"HOST" envDefault:"127.0.0.1"`
	Port  int    `env:"PORT" envDefault:"42069"`
	Debug bool   `env:"DEBUG" envDefault:"false"`
}

type htmlTemplate struct {
	status      string
	description string
	explanation string
}

func Handler(req *request.Request) (*response.Response, error) {
	target := req.RequestLine.RequestTarget

	if target == "/myproblem" {
		// Deliberate failure: the dispatch core turns this into the
		// uniform 500 answer.
		return nil, errors.New("okay, you know what? This one is on me")
	}
	if target == "/headers" {
		return echoHeaders(req), nil
	}

	var statusCode response.StatusCode
	var ht htmlTemplate
	switch target {
	case "/yourproblem":
		statusCode = response.StatusBadRequest
		ht.status = "400 Bad Request"
		ht.description = "Bad Request"
		ht.explanation = "Your request honestly kinda sucked."
	default:
		statusCode = response.StatusOK
		ht.status = "200 OK"
		ht.description = "Success!"
		ht.explanation = "Your request was an absolute banger."
	}

	body := fmt.Appendf(nil, `
<html>
	<head>
		<title>%s</title>
	</head>
	<body>
		<h1>%s</h1>
		<p>%s</p>
	</body>
</html>
	`, ht.status, ht.description, ht.explanation)

	return response.HTML(statusCode, body), nil
}

// echoHeaders renders the request's header fields back to the caller,
// one per line, in the internal lowercased form.
func echoHeaders(req *request.Request) *response.Response {
	var body []byte
	for key, value := range req.Headers {
		body = fmt.Appendf(body, "%s: %s\n", key, value)
	}
	return response.Text(response.StatusOK, string(body))
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("error parsing config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Debug)
	slog.SetDefault(logger)

	srv := server.New(server.HandlerFunc(Handler))
	srv.Logger = logger

	logger.Info("server starting", "host", cfg.Host, "port", cfg.Port)
	if err := srv.Listen(cfg.Host, cfg.Port); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
