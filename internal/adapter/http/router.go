package http

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"agent-api/internal/adapter/middleware"
	"agent-api/internal/infrastructure/logging"
)

// NewRouter builds the Echo instance with the middleware chain and routes.
func NewRouter(h *Handler, logger *log.Logger, level string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(logging.EchoLevel(level))
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		echomw.Recover(),
		middleware.PermissiveCORS(),
	)

	// routes; HEAD is answered wherever GET is
	getHead := []string{http.MethodGet, http.MethodHead}
	e.Match(getHead, "/", h.Root)
	e.Match(getHead, "/health", h.Health)
	e.Match(getHead, "/echo", h.Echo)

	return e
}
