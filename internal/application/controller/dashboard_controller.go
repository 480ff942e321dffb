package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/application/widget"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/dashboard"
)

// DashboardResponse is the dashboard as the page renders it
type DashboardResponse struct {
	Loaded     bool                   `json:"loaded"`
	Unit       entity.TemperatureUnit `json:"unit"`
	UnitSymbol string                 `json:"unitSymbol"`
	Cards      []widget.CardView      `json:"cards"`
}

// UnitResponse reports the active unit after a toggle click
type UnitResponse struct {
	Unit    entity.TemperatureUnit `json:"unit"`
	Changed bool                   `json:"changed"`
}

type DashboardController struct {
	api      *echo.Group
	useCase  dashboard.UseCase
	toggle   *widget.UnitToggle
	location *time.Location
}

func NewDashboardController(api *echo.Group, useCase dashboard.UseCase, toggle *widget.UnitToggle, location *time.Location) *DashboardController {
	return &DashboardController{api: api, useCase: useCase, toggle: toggle, location: location}
}

// InitDashboardRoutes initializes dashboard routes
func (controller *DashboardController) InitDashboardRoutes() {
	controller.api.GET("/dashboard", controller.GetDashboard)
	controller.api.POST("/dashboard/cities", controller.AddCity)
	controller.api.DELETE("/dashboard/cities/:id", controller.RemoveCity)
	controller.api.PUT("/dashboard/unit", controller.ChangeUnit)
}

// View renders the current dashboard state
func (controller *DashboardController) View() DashboardResponse {
	snapshot := controller.useCase.Snapshot()
	return DashboardResponse{
		Loaded:     snapshot.Loaded,
		Unit:       snapshot.Unit,
		UnitSymbol: snapshot.Unit.Symbol(),
		Cards:      widget.RenderCards(snapshot.Readings, snapshot.Unit, controller.location),
	}
}

// GetDashboard godoc
// @Summary Get the dashboard
// @Description Tracked readings rendered as weather cards in the active unit
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /dashboard [get]
func (controller *DashboardController) GetDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.View())
}

// AddCity godoc
// @Summary Track a city
// @Description Fetch a reading for the city and append it to the dashboard
// @Tags dashboard
// @Accept json
// @Produce json
// @Param city body model.AddCityDTO true "City to track"
// @Success 201 {object} widget.CardView "Card of the new reading"
// @Failure 400 {object} map[string]string "Invalid request body or missing name"
// @Failure 409 {object} map[string]string "City already tracked"
// @Failure 502 {object} map[string]string "Weather fetch failed"
// @Failure 503 {object} map[string]string "Dashboard still loading"
// @Router /dashboard/cities [post]
func (controller *DashboardController) AddCity(c echo.Context) error {
	var dto model.AddCityDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	city := entity.City{Name: strings.TrimSpace(dto.Name), Country: strings.TrimSpace(dto.Country)}
	if city.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}

	reading, err := controller.useCase.AddCity(c.Request().Context(), city)
	switch {
	case errors.Is(err, dashboard.ErrDuplicateCity):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, dashboard.ErrNotLoaded):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	unit := controller.useCase.Snapshot().Unit
	return c.JSON(http.StatusCreated, widget.RenderCard(*reading, unit, controller.location))
}

// RemoveCity godoc
// @Summary Stop tracking a city
// @Description Remove the reading with the given id, as the card's remove control does
// @Tags dashboard
// @Param id path string true "Reading id"
// @Success 204 "Reading removed"
// @Failure 404 {object} map[string]string "Reading not found"
// @Failure 503 {object} map[string]string "Dashboard still loading"
// @Router /dashboard/cities/{id} [delete]
func (controller *DashboardController) RemoveCity(c echo.Context) error {
	err := controller.useCase.RemoveCity(c.Request().Context(), c.Param("id"))
	switch {
	case errors.Is(err, dashboard.ErrReadingNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, dashboard.ErrNotLoaded):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangeUnit godoc
// @Summary Toggle the temperature unit
// @Tags dashboard
// @Accept json
// @Produce json
// @Param unit body model.ChangeUnitDTO true "celsius or fahrenheit"
// @Success 200 {object} UnitResponse
// @Failure 400 {object} map[string]string "Unknown unit"
// @Router /dashboard/unit [put]
func (controller *DashboardController) ChangeUnit(c echo.Context) error {
	var dto model.ChangeUnitDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	changed, err := controller.toggle.Click(dto.Unit)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, UnitResponse{Unit: controller.toggle.Unit(), Changed: changed})
}
