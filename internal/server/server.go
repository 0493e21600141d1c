// Package server exposes the converter over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/joshuapare/reg2ps/internal/logger"
	"github.com/joshuapare/reg2ps/pkg/reg2ps"
)

// Options configures the HTTP API.
type Options struct {
	MaxBodyBytes      int64  // request bodies above this size are rejected with 413
	Header            string // generator comment for /api/download
	FileName          string // attachment name for /api/download
	JoinContinuations bool
}

// Server wraps an echo instance serving the conversion API.
type Server struct {
	e    *echo.Echo
	opts Options
}

// ConvertRequest is the JSON form of a conversion request.
type ConvertRequest struct {
	Input string `json:"input"`
}

// ConvertResponse is returned for a successful conversion.
type ConvertResponse struct {
	Script string `json:"script"`
	Keys   int    `json:"keys"`
	Values int    `json:"values"`
}

// ErrorBody describes a failed conversion.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorBody.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// New creates a Server with its routes registered.
func New(opts Options) *Server {
	if opts.FileName == "" {
		opts.FileName = reg2ps.DefaultFileName
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if opts.MaxBodyBytes > 0 {
		e.Use(middleware.BodyLimit(fmt.Sprintf("%dB", opts.MaxBodyBytes)))
	}

	s := &Server{e: e, opts: opts}
	e.GET("/healthz", s.health)
	e.POST("/api/convert", s.convert)
	e.POST("/api/download", s.download)
	return s
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler { return s.e }

// Start listens on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errc <- s.e.Start(addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		return s.e.Shutdown(context.WithoutCancel(ctx))
	}
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) convert(c echo.Context) error {
	script, err := s.parse(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ConvertResponse{
		Script: script.String(),
		Keys:   script.Keys(),
		Values: script.Values(),
	})
}

func (s *Server) download(c echo.Context) error {
	script, err := s.parse(c)
	if err != nil {
		return respondError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", s.opts.FileName))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8",
		[]byte(reg2ps.FileContents(script, s.opts.Header)))
}

func (s *Server) parse(c echo.Context) (*reg2ps.Script, error) {
	input, err := readInput(c)
	if err != nil {
		return nil, err
	}
	script, err := reg2ps.ParseWithOptions(input, reg2ps.Options{JoinContinuations: s.opts.JoinContinuations})
	if err != nil {
		return nil, err
	}
	logger.Debug("converted", "request_id", requestID(c), "keys", script.Keys(), "values", script.Values())
	return script, nil
}

// respondError writes conversion failures as ErrorResponse: 400 for empty
// input, 422 for everything else. Other errors go to echo's error handler.
func respondError(c echo.Context, err error) error {
	var convErr *reg2ps.Error
	if !errors.As(err, &convErr) {
		return err
	}
	status := http.StatusUnprocessableEntity
	if convErr.Kind == reg2ps.ErrKindEmptyInput {
		status = http.StatusBadRequest
	}
	logger.Debug("conversion failed", "request_id", requestID(c), "kind", convErr.Kind.String(), "line", convErr.Line)
	return c.JSON(status, ErrorResponse{Error: ErrorBody{
		Kind:    convErr.Kind.String(),
		Line:    convErr.Line,
		Message: convErr.Error(),
	}})
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

func readInput(c echo.Context) (string, error) {
	req := c.Request()
	if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		var body ConvertRequest
		if err := c.Bind(&body); err != nil {
			return "", err
		}
		return body.Input, nil
	}

	data, err := io.ReadAll(req.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
