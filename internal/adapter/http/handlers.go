package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agent-api/internal/domain/response"
	"agent-api/internal/usecase/info"
)

type Handler struct{ uc *info.Usecase }

func NewHandler(uc *info.Usecase) *Handler { return &Handler{uc: uc} }

// GET /
func (h *Handler) Root(c echo.Context) error {
	data, msg := h.uc.Welcome(c.Request().Context())
	return c.JSON(http.StatusOK, response.OK(data, response.Msg(msg)))
}

// GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, response.OK(h.uc.Health(c.Request().Context()), nil))
}

// GET /echo
func (h *Handler) Echo(c echo.Context) error {
	params := h.uc.Echo(c.Request().Context(), c.Request().URL.RawQuery)
	return c.JSON(http.StatusOK, response.OK(params, response.Msg(info.EchoMessage)))
}
