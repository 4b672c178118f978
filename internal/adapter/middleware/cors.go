package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// PermissiveCORS allows any origin and method. Preflight requests get the
// requested headers echoed back because AllowHeaders is left empty.
// Allow-Origin and Expose-Headers are set on every response, including
// requests without an Origin header, which Echo's CORS middleware skips.
func PermissiveCORS() echo.MiddlewareFunc {
	cors := echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch,
			http.MethodPost, http.MethodDelete, http.MethodOptions,
		},
		ExposeHeaders: []string{"*"},
	})
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		h := cors(next)
		return func(c echo.Context) error {
			hdr := c.Response().Header()
			hdr.Set(echo.HeaderAccessControlAllowOrigin, "*")
			hdr.Set(echo.HeaderAccessControlExposeHeaders, "*")
			return h(c)
		}
	}
}
