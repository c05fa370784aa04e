// Package api exposes the moderation endpoints over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsroom/internal/domain"
)

// Moderation is the application surface behind the admin routes.
type Moderation interface {
	PendingArticles(ctx context.Context, limit int) ([]domain.Article, int, error)
	NoSummaryArticles(ctx context.Context, limit int) ([]domain.Article, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Article, error)
	BulkSummarize(ctx context.Context, ids []string) (*domain.BulkResult, error)
	GenerateThumbnail(ctx context.Context, id, mode string) (domain.StageResult, error)
	TranslateArticle(ctx context.Context, id string) (domain.StageResult, error)
	RevertTitle(ctx context.Context, id string) (domain.StageResult, error)
	SetTitle(ctx context.Context, id, title string) (*domain.Article, error)
	SetImage(ctx context.Context, id, imageURL string) (*domain.Article, error)
	TriggerCollection(ctx context.Context) (*domain.Job, error)
	TriggerTrendReport(ctx context.Context) (*domain.Job, error)
	CollectionStatus(ctx context.Context) (*domain.CollectionStatus, error)
	LatestTrendReport(ctx context.Context) (*domain.TrendReport, error)
	MigrateLegacyStatus(ctx context.Context) (int64, error)
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

func NewServer(moderation Moderation, checks map[string]HealthCheck, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				logger.Debug("request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				logger.Warn("request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))
	e.Use(middleware.Recover())

	h := &handler{moderation: moderation}

	e.GET("/healthz", healthHandler(checks))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	admin := e.Group("/api/admin")
	admin.GET("/articles/pending", h.pendingArticles)
	admin.GET("/articles/no-summary", h.noSummaryArticles)
	admin.PATCH("/articles/:id/status", h.updateStatus)
	admin.POST("/articles/summarize", h.bulkSummarize)
	admin.POST("/articles/:id/thumbnail", h.generateThumbnail)
	admin.POST("/articles/:id/translate", h.translate)
	admin.POST("/articles/:id/revert-title", h.revertTitle)
	admin.PUT("/articles/:id/title", h.setTitle)
	admin.PUT("/articles/:id/image", h.setImage)
	admin.POST("/collection", h.triggerCollection)
	admin.GET("/collection/status", h.collectionStatus)
	admin.POST("/trends", h.triggerTrendReport)
	admin.GET("/trends/latest", h.latestTrendReport)
	admin.POST("/maintenance/migrate-status", h.migrateStatus)

	return e
}

func healthHandler(checks map[string]HealthCheck) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		result := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = http.StatusServiceUnavailable
				result[name] = err.Error()
				continue
			}
			result[name] = "ok"
		}
		return c.JSON(status, result)
	}
}
