package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weather-dashboard/docs"
	"weather-dashboard/internal/application/controller"
	"weather-dashboard/internal/application/middleware"
	"weather-dashboard/internal/application/schedule"
	"weather-dashboard/internal/application/widget"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/notify"
	"weather-dashboard/internal/domain/usecase/dashboard"
	"weather-dashboard/internal/domain/usecase/health"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	infra := &infrastructure{}
	defer infra.close()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)

	renderer, err := controller.NewTemplateRenderer()
	if err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "views", err))
	}
	e.Renderer = renderer

	contextPath := resource.GetString("app.server.context-path")
	router := e.Group(contextPath)

	// Init Gateways
	storageGateway, err := infra.newStorageGateway(ctx)
	if err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "storage", err))
	}

	feed := notify.NewFeedNotifier(resource.GetInt("app.notify.feed-size"))
	notifier, err := infra.newNotifier(ctx, feed)
	if err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "notifications", err))
	}

	weatherGateway := api.NewSimulatedWeatherGateway(api.SimulationOptions{
		FetchMinLatency: resource.GetDuration("app.weather.fetch-min-latency"),
		FetchMaxLatency: resource.GetDuration("app.weather.fetch-max-latency"),
		SearchLatency:   resource.GetDuration("app.weather.search-latency"),
	})

	// Init UseCase
	dashboardUseCase := dashboard.NewDashboardUseCase(resource.GetString("app.dashboard.storage-key"), weatherGateway, storageGateway, notifier)
	healthUseCase := health.NewHealthUseCase(storageGateway, dashboardUseCase)

	// Init Widgets
	unitToggle := widget.NewUnitToggle(entity.Celsius, dashboardUseCase.SetUnit)
	searchBox := widget.NewSearchBox(weatherGateway, func(ctx context.Context, city entity.City) {
		// the use case reports the outcome through the notifier
		_, _ = dashboardUseCase.AddCity(ctx, city)
	}, widget.SearchBoxOptions{
		Debounce:       resource.GetDuration("app.search.debounce"),
		MinQueryLength: resource.GetInt("app.search.min-query-length"),
		Layout:         widget.DefaultLayout(),
	})
	defer searchBox.Stop()

	// Init Controller
	dashboardController := controller.NewDashboardController(router, dashboardUseCase, unitToggle, dashboardLocation())
	searchController := controller.NewSearchController(router, searchBox)
	notificationController := controller.NewNotificationController(router, feed)
	healthController := controller.NewHealthController(router, healthUseCase)
	pageController := controller.NewPageController(router, contextPath, dashboardController, searchBox, feed)

	// Init Routes
	dashboardController.InitDashboardRoutes()
	searchController.InitSearchRoutes()
	notificationController.InitNotificationRoutes()
	healthController.InitHealthRoutes()
	pageController.InitPageRoutes()

	docs.SwaggerInfo.BasePath = contextPath
	router.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	refreshScheduler := schedule.NewRefreshScheduler(dashboardUseCase, resource.GetString("app.dashboard.refresh.cron"))
	if err := refreshScheduler.InitRefreshScheduleTasks(); err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "refresh schedule", err))
	}
	defer refreshScheduler.Stop()

	notificationScheduler, err := schedule.NewNotificationScheduler(feed,
		resource.GetDuration("app.notify.feed-ttl"),
		resource.GetDuration("app.notify.prune-interval"))
	if err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "notification schedule", err))
	}
	if err := notificationScheduler.InitNotificationScheduleTasks(); err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "notification schedule", err))
	}
	defer func() { _ = notificationScheduler.Stop() }()

	// Initial load runs while the server already answers with the loading state
	go func() {
		if err := dashboardUseCase.Load(ctx); err != nil {
			log.Errorf("Dashboard load did not complete: %v", err)
		}
	}()

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("HTTP server stopped: %v", err)
			stop()
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDuration("app.server.shutdown-timeout"))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown failed: %v", err)
	}
	log.Info(msg.GetMessage("app.stopped"))
}
