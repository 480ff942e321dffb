package controller

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/application/widget"
	"weather-dashboard/internal/domain/model"
)

//go:embed views/*.html
var views embed.FS

// TemplateRenderer renders the embedded html views for echo
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	templates, err := template.ParseFS(views, "views/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse views: %w", err)
	}
	return &TemplateRenderer{templates: templates}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// PageData is what the dashboard page is rendered from
type PageData struct {
	Title         string
	ContextPath   string
	Dashboard     DashboardResponse
	Search        widget.SearchView
	Notifications []model.Notification
}

type PageController struct {
	api         *echo.Group
	contextPath string
	dashboard   *DashboardController
	box         *widget.SearchBox
	feed        NotificationFeed
}

func NewPageController(api *echo.Group, contextPath string, dashboard *DashboardController, box *widget.SearchBox, feed NotificationFeed) *PageController {
	return &PageController{api: api, contextPath: contextPath, dashboard: dashboard, box: box, feed: feed}
}

// InitPageRoutes initializes the html page routes
func (controller *PageController) InitPageRoutes() {
	controller.api.GET("", controller.Index)
	controller.api.GET("/", controller.Index)
}

// Index renders the dashboard page; the embedded script drives the json routes from there
func (controller *PageController) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "dashboard.html", PageData{
		Title:         "Weather Dashboard",
		ContextPath:   controller.contextPath,
		Dashboard:     controller.dashboard.View(),
		Search:        controller.box.View(),
		Notifications: controller.feed.Recent(),
	})
}
