package httpv1

import (
	"errors"
	"net/http"

	"github.com/Egor213/TerraTrack/internal/service"
	"github.com/Egor213/TerraTrack/internal/upload"
	"github.com/labstack/echo/v4"
)

func newHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, upload.ErrUnsupportedFormat),
		errors.Is(err, upload.ErrNotText),
		errors.Is(err, service.ErrNoRecords),
		errors.Is(err, service.ErrInvalidPlugin):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, upload.ErrTooLarge):
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, service.ErrUploadNotFound),
		errors.Is(err, service.ErrPluginNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUploadAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrPluginFailed):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
