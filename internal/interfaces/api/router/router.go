package router

import (
	"fmt"
	"net/http"

	"georeminder/internal/interfaces/api/handler"
	"georeminder/internal/pkg/logger"
	"georeminder/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the dependencies for the router.
type Config struct {
	ReminderHandler *handler.ReminderHandler
	AttemptHandler  *handler.AttemptHandler
	DeviceHandler   *handler.DeviceHandler
	GeofenceHandler *handler.GeofenceHandler
	// LineHandler is optional; the webhook is only served when it is set.
	LineHandler *handler.LineHandler
	Logger      logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogHost:      true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-Line-Signature"},
		MaxAge:       300,
	}))

	// Routes
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	reminders := e.Group("/reminders")
	reminders.GET("", cfg.ReminderHandler.List)
	reminders.DELETE("", cfg.ReminderHandler.DeleteAll)
	reminders.GET("/:id", cfg.ReminderHandler.Get)
	reminders.DELETE("/:id", cfg.ReminderHandler.Delete)

	attempts := e.Group("/attempts")
	attempts.POST("", cfg.AttemptHandler.Create)
	attempts.GET("/:id", cfg.AttemptHandler.Get)
	attempts.POST("/:id/respond", cfg.AttemptHandler.Respond)
	attempts.DELETE("/:id", cfg.AttemptHandler.Cancel)

	e.GET("/device", cfg.DeviceHandler.Get)
	e.PUT("/device", cfg.DeviceHandler.Update)
	e.POST("/device/location", cfg.DeviceHandler.ReportLocation)
	e.GET("/geofences", cfg.DeviceHandler.Geofences)

	e.POST("/geofence-events", cfg.GeofenceHandler.HandleEvent)

	// LINE Platform requires POST for webhook
	if cfg.LineHandler != nil {
		e.POST("/callback", cfg.LineHandler.HandleWebhook)
	}

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
