package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"airdash/internal/alert"
	"airdash/internal/types"
)

// AlertsResponse lists configured alert rules
type AlertsResponse struct {
	Alerts []types.Alert `json:"alerts"`
}

// ToggleRequest enables or disables an alert rule
type ToggleRequest struct {
	Enabled bool `json:"enabled"`
}

var validationErrors = []error{
	alert.ErrInvalidThreshold,
	alert.ErrInvalidCondition,
	alert.ErrInvalidPollutant,
	alert.ErrNoChannels,
	alert.ErrMissingLocation,
}

// renderAlertError maps alert service failures: validation to 400, unknown
// IDs to 404, anything else to the upstream mapping
func (app *App) renderAlertError(c *gin.Context, err error) {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}
	if errors.Is(err, alert.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	app.renderUpstreamError(c, err)
}

// handleListAlerts godoc
// @Summary List alert rules
// @Tags alerts
// @Produce json
// @Success 200 {object} AlertsResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/alerts [get]
func (app *App) handleListAlerts(c *gin.Context) {
	alerts, err := app.alertService.List(c.Request.Context())
	if err != nil {
		app.renderAlertError(c, err)
		return
	}
	c.JSON(http.StatusOK, AlertsResponse{Alerts: alerts})
}

// handleCreateAlert godoc
// @Summary Create an alert rule
// @Tags alerts
// @Accept json
// @Produce json
// @Param alert body types.Alert true "Alert rule"
// @Success 201 {object} types.Alert
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/alerts [post]
func (app *App) handleCreateAlert(c *gin.Context) {
	var rule types.Alert
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	created, err := app.alertService.Create(c.Request.Context(), rule)
	if err != nil {
		app.renderAlertError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// handleUpdateAlert godoc
// @Summary Update an alert rule
// @Tags alerts
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Param alert body types.Alert true "Alert rule"
// @Success 200 {object} types.Alert
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/alerts/{id} [put]
func (app *App) handleUpdateAlert(c *gin.Context) {
	var rule types.Alert
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := app.alertService.Update(c.Request.Context(), c.Param("id"), rule)
	if err != nil {
		app.renderAlertError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// handleDeleteAlert godoc
// @Summary Delete an alert rule
// @Tags alerts
// @Param id path string true "Alert ID"
// @Success 204
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/alerts/{id} [delete]
func (app *App) handleDeleteAlert(c *gin.Context) {
	if err := app.alertService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		app.renderAlertError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// handleToggleAlert godoc
// @Summary Enable or disable an alert rule
// @Tags alerts
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Param toggle body ToggleRequest true "Desired enabled state"
// @Success 200 {object} types.Alert
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/alerts/{id}/toggle [post]
func (app *App) handleToggleAlert(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := app.alertService.Toggle(c.Request.Context(), c.Param("id"), req.Enabled)
	if err != nil {
		app.renderAlertError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
