package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/util/numberutils"
)

// NotificationFeed is the read side of the in-memory toast feed
type NotificationFeed interface {
	Recent() []model.Notification
}

type NotificationController struct {
	api  *echo.Group
	feed NotificationFeed
}

func NewNotificationController(api *echo.Group, feed NotificationFeed) *NotificationController {
	return &NotificationController{api: api, feed: feed}
}

// InitNotificationRoutes initializes notification routes
func (controller *NotificationController) InitNotificationRoutes() {
	controller.api.GET("/notifications", controller.GetNotifications)
}

// GetNotifications godoc
// @Summary Recent notifications
// @Description Toasts emitted by the dashboard, oldest first
// @Tags notifications
// @Produce json
// @Param limit query int false "Only the newest n notifications" default(0)
// @Success 200 {array} model.Notification
// @Router /notifications [get]
func (controller *NotificationController) GetNotifications(c echo.Context) error {
	notifications := controller.feed.Recent()

	limit := numberutils.ToIntWithDefault(c.QueryParam("limit"), 0)
	if limit > 0 {
		notifications = notifications[len(notifications)-numberutils.ClampInt(limit, 0, len(notifications)):]
	}
	return c.JSON(http.StatusOK, notifications)
}
