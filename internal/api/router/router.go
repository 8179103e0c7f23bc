package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stillmind/backend/config"
	"stillmind/backend/internal/api/handler"
	"stillmind/backend/internal/api/middleware"
	"stillmind/backend/pkg/redis"
)

// Setup builds the Gin engine and route table.
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// schedules keep the original wire contract: all four verbs on
		// the collection path, targets named by query string or body id
		schedules := v1.Group("/schedules")
		schedules.Use(middleware.RateLimit(rdb, 60, time.Minute))
		{
			schedules.GET("", h.Schedule.ListSchedules)
			schedules.POST("", h.Schedule.CreateSchedule)
			schedules.PUT("", h.Schedule.UpdateSchedule)
			schedules.DELETE("", h.Schedule.DeleteSchedule)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.GET("", h.Session.ListSessions)
			sessions.GET("/:id", h.Session.GetSession)
			sessions.POST("", h.Session.CreateSession)
			sessions.DELETE("/:id", h.Session.DeleteSession)
		}

		favorites := v1.Group("/favorites")
		{
			favorites.GET("", h.Favorite.ListFavorites)
			favorites.POST("", h.Favorite.CreateFavorite)
			favorites.DELETE("/:id", h.Favorite.DeleteFavorite)
		}

		users := v1.Group("/users")
		{
			users.GET("/:id", h.User.GetUser)
			users.PUT("/:id/preferences", h.User.UpdatePreferences)
		}

		v1.GET("/progress", h.Progress.GetProgress)

		export := v1.Group("/export")
		export.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			export.GET("/schedules.xlsx", h.Export.ExportXLSX)
			export.GET("/schedules.ics", h.Export.ExportICS)
		}
	}

	return r
}
