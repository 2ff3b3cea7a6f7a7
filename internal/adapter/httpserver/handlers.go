package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	apperrors "github.com/rzadrzi/evalrag/internal/platform/errors"
)

const greeting = "Hello world!"

func (s *Server) handleGreeting(c echo.Context) error {
	if err := c.String(http.StatusOK, greeting); err != nil {
		return fmt.Errorf("failed to write greeting response: %w", err)
	}
	return nil
}

func (s *Server) handleAppName(c echo.Context) error {
	// Config validation guarantees a non-empty name at startup; the guard
	// keeps the contract (500, not a panic) if that ever changes.
	name := s.config.AppName
	if name == "" {
		return apperrors.InternalError("application name is not configured", nil)
	}

	if err := c.String(http.StatusOK, name); err != nil {
		return fmt.Errorf("failed to write app name response: %w", err)
	}
	return nil
}
