package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries the transport settings of the API.
type RouterConfig struct {
	JWTSecret []byte
	// BodyLimit uses echo's size notation, e.g. "12M".
	BodyLimit string
	Gatherer  prometheus.Gatherer
}

// NewEcho builds the echo instance with middleware, operational endpoints and the
// authenticated /api/v1 routes.
func NewEcho(s *Server, cfg RouterConfig, logger *slog.Logger) (*echo.Echo, error) {
	if len(cfg.JWTSecret) == 0 {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	if err := registerOpenAPI(context.Background()); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}
	e.Use(requestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", Authenticate(cfg.JWTSecret))

	api.POST("/products", s.CreateProduct)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.PUT("/orders/:id/items/:itemId/cancel", s.CancelOrderItem)
	api.PUT("/orders/:id/payment-status", s.UpdatePaymentStatus)

	api.POST("/delivery/:orderId/assign", s.AssignDelivery)
	api.PUT("/delivery/:orderId/status", s.UpdateDeliveryStatus)
	api.POST("/delivery/:orderId/proof", s.UploadProof)
	api.GET("/delivery/:orderId/proof", s.ListProofs)
	api.PATCH("/delivery/attachments/:id", s.UpdateAttachmentNotes)

	api.POST("/complaints", s.CreateComplaint)
	api.PUT("/complaints/:id/status", s.UpdateComplaintStatus)

	api.GET("/notifications", s.ListNotifications)
	api.GET("/notifications/unread-count", s.UnreadCount)
	api.PUT("/notifications/read-all", s.MarkAllNotificationsRead)
	api.PUT("/notifications/:id/read", s.MarkNotificationRead)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}
