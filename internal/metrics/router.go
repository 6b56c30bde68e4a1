package metrics

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
)

func ConfigureRouter(handler *echo.Echo) {
	handler.GET("/metrics", echoprometheus.NewHandler())
}

// Middleware records request count and latency for the API router.
func Middleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddleware("tflog_api")
}
