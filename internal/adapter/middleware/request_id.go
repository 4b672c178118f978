package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"agent-api/pkg/id"
)

// RequestID keeps an incoming X-Request-Id or mints a KSUID.
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: id.NewRequestID,
	})
}
