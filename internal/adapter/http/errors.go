package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"agent-api/internal/domain/response"
)

// ErrorHandler renders framework errors (unknown route, wrong method,
// recovered panic) with the failure envelope. Non-HTTP errors never
// expose their text to the client.
func ErrorHandler(logger *log.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprint(he.Message)
		}

		req := c.Request()
		if code >= http.StatusInternalServerError {
			logger.Error("request failed", "method", req.Method, "uri", req.RequestURI, "status", code, "err", err)
		} else {
			logger.Warn("request rejected", "method", req.Method, "uri", req.RequestURI, "status", code)
		}

		var werr error
		if req.Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, response.Fail[any](msg))
		}
		if werr != nil {
			logger.Debug("write error response", "err", werr)
		}
	}
}
