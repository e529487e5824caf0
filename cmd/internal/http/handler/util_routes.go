package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type DefaultUtilRoute struct {
	Banner string
}

func NewUtilRoute(banner string) *DefaultUtilRoute {
	return &DefaultUtilRoute{Banner: banner}
}

func (u *DefaultUtilRoute) Root(c echo.Context) error {
	return c.String(http.StatusOK, u.Banner)
}

// HealthCheck is used by the container health check.
func (u *DefaultUtilRoute) HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
