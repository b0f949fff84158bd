package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"contoso.com/officemock/internal/config"
)

// Info describes the static metadata a service reports on its home endpoint.
type Info struct {
	Message   string
	Endpoints []string
}

type HTTPServer struct {
	echo *echo.Echo
	cfg  config.Service
	info Info
}

// New builds the echo instance shared by every service: request logging,
// panic recovery, request ids, the uniform JSON error fallback, and the
// /health and / endpoints.
func New(cfg config.Service, info Info) *HTTPServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.WithFields(log.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"request_id": v.RequestID,
			}).Info("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.HTTPErrorHandler = errorHandler

	server := &HTTPServer{
		echo: e,
		cfg:  cfg,
		info: info,
	}

	e.GET("/health", server.healthCheck)
	e.GET("/", server.home)

	return server
}

// Echo exposes the underlying instance for route registration.
func (s *HTTPServer) Echo() *echo.Echo {
	return s.echo
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "healthy",
		"service":   s.cfg.Name,
		"version":   s.cfg.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"port":      strconv.Itoa(s.cfg.Port),
	})
}

func (s *HTTPServer) home(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message":   s.info.Message,
		"version":   s.cfg.Version,
		"service":   s.cfg.Name,
		"endpoints": s.info.Endpoints,
	})
}

// errorHandler replaces echo's default error bodies with the uniform
// {"error": message} shape on every service.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		switch {
		case code == http.StatusNotFound:
			message = "Endpoint not found"
		case code == http.StatusMethodNotAllowed:
			message = "Method not allowed"
		case code < http.StatusInternalServerError:
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(code)
			}
		}
	}

	if code >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	}

	if err := c.JSON(code, echo.Map{"error": message}); err != nil {
		log.WithError(err).Error("Failed to write error response")
	}
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
