package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

// polled paths are hit by the page every few hundred milliseconds and would drown the log
var quietSuffixes = []string{"/health", "/search", "/notifications"}

func skipRequestLog(c echo.Context) bool {
	path := c.Request().URL.Path
	if strings.Contains(path, "/swagger/") {
		return true
	}
	if c.Request().Method != echo.GET {
		return false
	}
	for _, suffix := range quietSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// SetupRequestLogger tags every request with an id and logs its outcome through zap.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		Skipper:      skipRequestLog,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}

			if v.Error == nil {
				log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID), fields...)
				return nil
			}

			log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error),
				append(fields, zap.Error(v.Error))...)
			return nil
		},
	}))
}
