package httpv1

import (
	"net/http"
	"strconv"

	logginghelper "github.com/Egor213/TerraTrack/internal/controller/common/logging"
	"github.com/Egor213/TerraTrack/internal/controller/http/validators"
	"github.com/Egor213/TerraTrack/internal/domain"
	"github.com/Egor213/TerraTrack/internal/repo/repotypes"
	"github.com/Egor213/TerraTrack/internal/service"
	"github.com/Egor213/TerraTrack/internal/upload"
	"github.com/labstack/echo/v4"
)

type logRoutes struct {
	logService     service.Log
	maxUploadBytes int64
}

func newLogRoutes(g *echo.Group, ls service.Log, maxUploadBytes int64) {
	r := &logRoutes{
		logService:     ls,
		maxUploadBytes: maxUploadBytes,
	}

	g.POST("/upload", r.upload)
	g.POST("/analyze", r.analyze)
	g.GET("/logs", r.getLogs)
	g.GET("/uploads", r.getUploads)
	g.GET("/uploads/:id/sections", r.getSections)
	g.GET("/gantt", r.getGantt)
}

type uploadResponse struct {
	Message string `json:"message"`
	domain.UploadResult
}

func (r *logRoutes) upload(c echo.Context) error {
	filename, text, err := r.readFile(c)
	if err != nil {
		return err
	}
	logginghelper.LogUploadReceived(filename, len(text))

	res, err := r.logService.Upload(c.Request().Context(), filename, text)
	if err != nil {
		logginghelper.LogUploadError(filename, err)
		return newHTTPError(err)
	}
	logginghelper.LogUploadSaved(res)

	return c.JSON(http.StatusOK, uploadResponse{
		Message:      "File uploaded successfully",
		UploadResult: res,
	})
}

func (r *logRoutes) analyze(c echo.Context) error {
	filename, text, err := r.readFile(c)
	if err != nil {
		return err
	}

	res := r.logService.Analyze(filename, text)
	if res.TotalLogs == 0 {
		return newHTTPError(service.ErrNoRecords)
	}
	return c.JSON(http.StatusOK, res)
}

func (r *logRoutes) readFile(c echo.Context) (string, string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", "", echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if !upload.Supported(fh.Filename) {
		return "", "", newHTTPError(upload.ErrUnsupportedFormat)
	}

	f, err := fh.Open()
	if err != nil {
		return "", "", echo.NewHTTPError(http.StatusBadRequest, "cannot read file")
	}
	defer f.Close()

	text, err := upload.Decode(fh.Filename, f, r.maxUploadBytes)
	if err != nil {
		return "", "", newHTTPError(err)
	}
	return fh.Filename, text, nil
}

func (r *logRoutes) getLogs(c echo.Context) error {
	lf, err := bindLogFilter(c)
	if err != nil {
		return err
	}

	logs, err := r.logService.GetLogs(c.Request().Context(), lf)
	if err != nil {
		return newHTTPError(err)
	}
	return c.JSON(http.StatusOK, logs)
}

func (r *logRoutes) getUploads(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := validators.ValidateLimit(limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	uploads, err := r.logService.GetUploads(c.Request().Context(), limit)
	if err != nil {
		return newHTTPError(err)
	}
	return c.JSON(http.StatusOK, uploads)
}

func (r *logRoutes) getSections(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid upload id")
	}

	sections, err := r.logService.GetSections(c.Request().Context(), id)
	if err != nil {
		return newHTTPError(err)
	}
	return c.JSON(http.StatusOK, sections)
}

func (r *logRoutes) getGantt(c echo.Context) error {
	var id int
	if err := echo.QueryParamsBinder(c).Int("upload_id", &id).BindError(); err != nil || id < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid upload id")
	}

	timelines, err := r.logService.GetTimelines(c.Request().Context(), id)
	if err != nil {
		return newHTTPError(err)
	}
	return c.JSON(http.StatusOK, timelines)
}

func bindLogFilter(c echo.Context) (repotypes.LogFilter, error) {
	var lf repotypes.LogFilter
	err := echo.QueryParamsBinder(c).
		Int("skip", &lf.Skip).
		Int("limit", &lf.Limit).
		Int("upload_id", &lf.UploadId).
		String("level", &lf.Level).
		String("tf_resource_type", &lf.ResourceType).
		String("timestamp_from", &lf.TimestampFrom).
		String("timestamp_to", &lf.TimestampTo).
		String("search_query", &lf.Search).
		BindError()
	if err != nil {
		return lf, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := validators.ValidateLogFilter(&lf); err != nil {
		return lf, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return lf, nil
}
