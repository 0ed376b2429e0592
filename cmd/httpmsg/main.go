// Command httpmsg reads one raw HTTP request from a file or stdin, parses
// it, and writes the response bytes a server would send to stdout.
//
//	httpmsg [file]
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/2ndDerivative/HttpLibrary/internal/config"
	"github.com/2ndDerivative/HttpLibrary/internal/logging"
	"github.com/2ndDerivative/HttpLibrary/internal/request"
	"github.com/2ndDerivative/HttpLibrary/internal/response"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	logger := logging.New(cfg, stderr)
	defer func() { _ = logger.Sync() }()

	in, err := openInput(args, stdin)
	if err != nil {
		logger.Error("cannot open input", zap.Error(err))
		return 1
	}
	defer in.Close()

	var out response.Byteable
	req, err := request.RequestFromReader(in)
	switch {
	case err == nil:
		logger.Debug("parsed request",
			zap.Stringer("method", req.RequestLine.Method),
			zap.String("target", req.RequestLine.RequestTarget),
			zap.Stringer("version", req.RequestLine.HttpVersion),
			zap.Int("headers", req.Headers.Len()),
		)
		out, err = respond(cfg, req)
	case errors.As(err, new(*request.ParseError)):
		status := statusFor(err)
		logger.Warn("rejected request", zap.Error(err), zap.Uint16("status", status.Code()))
		out, err = errorResponse(cfg, status, err)
	default:
		logger.Error("cannot read request", zap.Error(err))
		return 1
	}
	if err != nil {
		logger.Error("cannot build response", zap.Error(err))
		return 1
	}

	if _, err := stdout.Write(out.Bytes()); err != nil {
		logger.Error("cannot write response", zap.Error(err))
		return 1
	}
	return 0
}

func openInput(args []string, stdin io.Reader) (io.ReadCloser, error) {
	switch len(args) {
	case 0:
		return io.NopCloser(stdin), nil
	case 1:
		if args[0] == "-" {
			return io.NopCloser(stdin), nil
		}
		f, err := os.Open(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "open request file")
		}
		return f, nil
	default:
		return nil, errors.New("usage: httpmsg [file]")
	}
}

// statusFor falls back to 400 when the protocol does not mandate a code.
func statusFor(err error) response.StatusCode {
	if status, ok := request.AppropriateResponse(err); ok {
		return status
	}
	return response.StatusBadRequest
}

func respond(cfg config.Config, req *request.Request) (*response.Complete, error) {
	var body []byte
	if cfg.EchoBody() && req.RequestLine.Method != request.MethodHead {
		body = req.Body
	}

	r, err := response.New(response.StatusOK).Header("server", cfg.ServerName())
	if err != nil {
		return nil, err
	}
	// Echoing host keeps the advertised version at 1.1 for 1.1 clients.
	if host, ok := req.Header("host"); ok {
		if r, err = r.Header("host", host); err != nil {
			return nil, err
		}
	}
	if r, err = r.Header("content-length", strconv.Itoa(len(body))); err != nil {
		return nil, err
	}
	return r.Body(body), nil
}

func errorResponse(cfg config.Config, status response.StatusCode, cause error) (*response.Complete, error) {
	body := []byte(cause.Error() + "\n")

	r, err := response.New(status).Header("server", cfg.ServerName())
	if err != nil {
		return nil, err
	}
	if r, err = r.Header("connection", "close"); err != nil {
		return nil, err
	}
	if r, err = r.Header("content-length", strconv.Itoa(len(body))); err != nil {
		return nil, err
	}
	return r.Body(body), nil
}
