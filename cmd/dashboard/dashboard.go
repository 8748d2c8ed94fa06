package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"airdash/internal/dashboard"
	"airdash/internal/export"
	"airdash/internal/providers/forecastapi"
	"airdash/internal/types"
)

// ErrorResponse is the error body returned by all endpoints
type ErrorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

// LocationsResponse lists the monitored locations
type LocationsResponse struct {
	Locations []types.Location `json:"locations"`
}

// renderUpstreamError maps a backend failure to an HTTP response. Client
// errors keep the backend's status; everything else is a retryable 502.
func (app *App) renderUpstreamError(c *gin.Context, err error) {
	var apiErr *forecastapi.APIError
	if errors.As(err, &apiErr) && !apiErr.Retryable() {
		c.JSON(apiErr.StatusCode, ErrorResponse{Error: apiErr.Body})
		return
	}
	c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error(), Retryable: true})
}

// handleListLocations godoc
// @Summary List monitored locations
// @Tags dashboard
// @Produce json
// @Success 200 {object} LocationsResponse
// @Router /api/v1/dashboard/locations [get]
func (app *App) handleListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, LocationsResponse{
		Locations: app.locationService.Watchlist(),
	})
}

// handleGetCurrent godoc
// @Summary Current AQI for a location
// @Description Returns the current AQI snapshot, marked stale when served from the last-known-good store
// @Tags dashboard
// @Produce json
// @Param location path string true "Location name or slug"
// @Success 200 {object} dashboard.CurrentResult
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/dashboard/current/{location} [get]
func (app *App) handleGetCurrent(c *gin.Context) {
	result, err := app.dashboardService.Current(c.Request.Context(), c.Param("location"))
	if err != nil {
		app.renderUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleGetForecast godoc
// @Summary 24-hour AQI forecast for a location
// @Tags dashboard
// @Produce json
// @Param location path string true "Location name or slug"
// @Success 200 {object} dashboard.RowsResult
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/dashboard/forecast/{location} [get]
func (app *App) handleGetForecast(c *gin.Context) {
	result, err := app.dashboardService.Forecast(c.Request.Context(), c.Param("location"))
	if err != nil {
		app.renderUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleGetHistory godoc
// @Summary Historical AQI rows for a location
// @Tags dashboard
// @Produce json
// @Param location path string true "Location name or slug"
// @Param days query int false "Number of past days" default(7)
// @Success 200 {object} dashboard.RowsResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/dashboard/history/{location} [get]
func (app *App) handleGetHistory(c *gin.Context) {
	days, err := parseDays(c.Query("days"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := app.dashboardService.History(c.Request.Context(), c.Param("location"), days)
	if err != nil {
		app.renderUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleGetOverview godoc
// @Summary Dashboard overview for a location
// @Description Aggregates current AQI, 24h forecast and local time for the landing view
// @Tags dashboard
// @Produce json
// @Param location path string true "Location name or slug"
// @Success 200 {object} dashboard.Overview
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/dashboard/overview/{location} [get]
func (app *App) handleGetOverview(c *gin.Context) {
	loc, err := app.locationService.Resolve(c.Param("location"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	// The realtime feed follows the location being viewed
	if err := app.realtime.Connect(loc.Slug()); err != nil {
		app.logger.Warn("failed to follow location on realtime feed",
			"location", loc.Slug(), "error", err)
	}

	overview, err := app.dashboardService.GetOverview(c.Request.Context(), loc.Slug())
	if err != nil {
		app.renderUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// handleGetStatus godoc
// @Summary Backend and realtime connectivity status
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.Status
// @Router /api/v1/dashboard/status [get]
func (app *App) handleGetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, app.dashboardService.Status())
}

// handleRefresh godoc
// @Summary Force a refresh for a location
// @Description Invalidates cached data and fetches fresh values. Rejected while the backend is unreachable.
// @Tags dashboard
// @Produce json
// @Param location path string true "Location name or slug"
// @Success 200 {object} dashboard.CurrentResult
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/dashboard/refresh/{location} [post]
func (app *App) handleRefresh(c *gin.Context) {
	result, err := app.dashboardService.Refresh(c.Request.Context(), c.Param("location"))
	if err != nil {
		if errors.Is(err, dashboard.ErrOffline) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "backend is offline"})
			return
		}
		app.renderUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleExport godoc
// @Summary Export forecast or history rows
// @Tags dashboard
// @Produce json
// @Produce text/csv
// @Param location path string true "Location name or slug"
// @Param format query string false "Export format (csv or json)" default(csv)
// @Param window query string false "Data window (24h or history)" default(24h)
// @Param days query int false "Number of past days for the history window" default(7)
// @Success 200 {string} string "Exported rows"
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/dashboard/export/{location} [get]
func (app *App) handleExport(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", "csv"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	loc := c.Param("location")
	var result *dashboard.RowsResult
	switch window := c.DefaultQuery("window", "24h"); window {
	case "24h":
		result, err = app.dashboardService.Forecast(c.Request.Context(), loc)
	case "history":
		var days int
		if days, err = parseDays(c.Query("days")); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		result, err = app.dashboardService.History(c.Request.Context(), loc, days)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "window must be \"24h\" or \"history\""})
		return
	}
	if err != nil {
		app.renderUpstreamError(c, err)
		return
	}

	filename := export.Filename(types.Slugify(loc), format, time.Now().UTC())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", format.ContentType())
	c.Status(http.StatusOK)

	if err := export.Write(c.Writer, format, result.Rows); err != nil {
		app.logger.Error("failed to write export", "location", loc, "error", err)
	}
}

func parseDays(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil || days < 1 {
		return 0, errors.New("days must be a positive integer")
	}
	return days, nil
}
