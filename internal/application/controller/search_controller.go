package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/application/widget"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

// PointerResponse reports where a pointer-down landed
type PointerResponse struct {
	Region widget.Region     `json:"region"`
	Search widget.SearchView `json:"search"`
}

// SelectResponse reports the chosen city
type SelectResponse struct {
	City   entity.City       `json:"city"`
	Search widget.SearchView `json:"search"`
}

type SearchController struct {
	api *echo.Group
	box *widget.SearchBox
}

func NewSearchController(api *echo.Group, box *widget.SearchBox) *SearchController {
	return &SearchController{api: api, box: box}
}

// InitSearchRoutes initializes search box routes
func (controller *SearchController) InitSearchRoutes() {
	controller.api.GET("/search", controller.GetSearch)
	controller.api.POST("/search/input", controller.Input)
	controller.api.POST("/search/focus", controller.Focus)
	controller.api.POST("/search/pointer-down", controller.PointerDown)
	controller.api.POST("/search/select", controller.Select)
}

// GetSearch godoc
// @Summary Get the search box state
// @Tags search
// @Produce json
// @Success 200 {object} widget.SearchView
// @Router /search [get]
func (controller *SearchController) GetSearch(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.box.View())
}

// Input godoc
// @Summary Type into the search box
// @Description Replaces the query; the directory search runs after the debounce
// @Tags search
// @Accept json
// @Produce json
// @Param query body model.SearchInputDTO true "Current text"
// @Success 202 {object} widget.SearchView
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /search/input [post]
func (controller *SearchController) Input(c echo.Context) error {
	var dto model.SearchInputDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	controller.box.Input(dto.Query)
	return c.JSON(http.StatusAccepted, controller.box.View())
}

// Focus godoc
// @Summary Focus the search input
// @Tags search
// @Produce json
// @Success 200 {object} widget.SearchView
// @Router /search/focus [post]
func (controller *SearchController) Focus(c echo.Context) error {
	controller.box.Focus()
	return c.JSON(http.StatusOK, controller.box.View())
}

// PointerDown godoc
// @Summary Press the pointer somewhere on the page
// @Description Either a region name (input, dropdown, outside) or page coordinates
// @Tags search
// @Accept json
// @Produce json
// @Param pointer body model.SearchPointerDTO true "Target region or coordinates"
// @Success 200 {object} PointerResponse
// @Failure 400 {object} map[string]string "Unknown region or missing coordinates"
// @Router /search/pointer-down [post]
func (controller *SearchController) PointerDown(c echo.Context) error {
	var dto model.SearchPointerDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	var region widget.Region
	switch {
	case dto.Target != "":
		parsed, ok := widget.ParseRegion(dto.Target)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "target must be input, dropdown or outside"})
		}
		region = parsed
	case dto.X != nil && dto.Y != nil:
		region = controller.box.HitTest(widget.Point{X: *dto.X, Y: *dto.Y})
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "target or x and y are required"})
	}

	controller.box.PointerDown(region)
	return c.JSON(http.StatusOK, PointerResponse{Region: region, Search: controller.box.View()})
}

// Select godoc
// @Summary Choose a search result
// @Description Hands the city to the dashboard and clears the search box
// @Tags search
// @Accept json
// @Produce json
// @Param selection body model.SearchSelectDTO true "Result index"
// @Success 200 {object} SelectResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "No result at that index"
// @Router /search/select [post]
func (controller *SearchController) Select(c echo.Context) error {
	var dto model.SearchSelectDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	city, err := controller.box.Select(c.Request().Context(), dto.Index)
	if errors.Is(err, widget.ErrNoSuchResult) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, SelectResponse{City: city, Search: controller.box.View()})
}
