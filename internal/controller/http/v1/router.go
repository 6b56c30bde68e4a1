package httpv1

import (
	"net/http"

	"github.com/Egor213/TerraTrack/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func ConfigureRouter(handler *echo.Echo, services *service.Services, maxUploadBytes int64, mw ...echo.MiddlewareFunc) {
	handler.Use(middleware.Recover())
	handler.Use(middleware.CORS())
	handler.Use(mw...)

	handler.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "TerraTrack API"})
	})
	handler.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	api := handler.Group("/api")
	newLogRoutes(api, services.Log, maxUploadBytes)
	newPluginRoutes(api, services.Plugin)
}
