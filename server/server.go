// Package server assembles the HTTP server hosting the famichat API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/hrygo/famichat/internal/profile"
	apiv1 "github.com/hrygo/famichat/server/router/api/v1"
	"github.com/hrygo/famichat/store"
)

// Server hosts the famichat HTTP API.
type Server struct {
	Profile *profile.Profile
	Store   *store.Store

	echoServer *echo.Echo
	apiService *apiv1.APIV1Service
}

// NewServer creates the server and wires the API service.
func NewServer(p *profile.Profile, st *store.Store) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status)
			return nil
		},
	}))

	apiService, err := apiv1.NewAPIV1Service(p, st)
	if err != nil {
		return nil, errors.Wrap(err, "create api service")
	}
	apiService.Register(e)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	return &Server{
		Profile:    p,
		Store:      st,
		echoServer: e,
		apiService: apiService,
	}, nil
}

// Start begins serving. It blocks until the listener fails or is shut down.
func (s *Server) Start() error {
	if !s.Profile.IsAIEnabled() {
		slog.Warn("no API key configured: chat disabled, suggestions fallback-only")
	}
	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	slog.Info("famichat server started", "address", address, "mode", s.Profile.Mode)
	if err := s.echoServer.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := s.echoServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutdown http server")
	}
	slog.Info("famichat server stopped")
	return nil
}
