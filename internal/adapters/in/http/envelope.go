package http

import (
	"errors"
	"net/http"
	"strings"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every response.
type Envelope struct {
	Success      bool                      `json:"success"`
	Data         any                       `json:"data,omitempty"`
	Error        string                    `json:"error,omitempty"`
	Notification *ports.NotificationResult `json:"notification,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

func respondNotified(c echo.Context, status int, data any, n ports.NotificationResult) error {
	return c.JSON(status, Envelope{Success: true, Data: data, Notification: &n})
}

// StatusOf maps an error to its response status.
func StatusOf(err error) int {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler writes every failure as an envelope. It replaces echo's default
// handler so that routing and binding errors share the shape.
func (s *Server) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := StatusOf(err)
	message := strings.ReplaceAll(err.Error(), "\n", "; ")
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok {
			message = m
		}
	}

	entry := s.logger.WithField("path", c.Path()).WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}

	if err = c.JSON(status, Envelope{Success: false, Error: message}); err != nil {
		s.logger.WithError(err).Warn("writing error response")
	}
}
