package httpv1

import (
	"net/http"

	"github.com/Egor213/TerraTrack/internal/service"
	"github.com/labstack/echo/v4"
)

type pluginRoutes struct {
	pluginService service.Plugin
}

func newPluginRoutes(g *echo.Group, ps service.Plugin) {
	r := &pluginRoutes{pluginService: ps}

	g.GET("/plugins", r.list)
	g.POST("/plugins", r.register)
	g.POST("/plugins/:name/process", r.process)
}

type registerPluginInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type processPluginInput struct {
	Options map[string]string `json:"options"`
}

func (r *pluginRoutes) list(c echo.Context) error {
	return c.JSON(http.StatusOK, r.pluginService.List())
}

func (r *pluginRoutes) register(c echo.Context) error {
	var input registerPluginInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := r.pluginService.Register(input.Name, input.Address); err != nil {
		return newHTTPError(err)
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message": "Plugin registered",
		"name":    input.Name,
	})
}

func (r *pluginRoutes) process(c echo.Context) error {
	lf, err := bindLogFilter(c)
	if err != nil {
		return err
	}

	var input processPluginInput
	if err := (&echo.DefaultBinder{}).BindBody(c, &input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	res, err := r.pluginService.Process(c.Request().Context(), c.Param("name"), lf, input.Options)
	if err != nil {
		return newHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}
