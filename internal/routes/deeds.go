package routes

import (
	"github.com/Ali-Cheikh/ramadan-duo/internal/handlers"
	"github.com/Ali-Cheikh/ramadan-duo/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterDeedRoutes(r gin.IRouter) {
	deeds := r.Group("/deeds")
	deeds.Use(middleware.AuthMiddleware())
	{
		deeds.GET("/today", handlers.GetTodayLog)
		deeds.POST("/toggle", middleware.ToggleRateLimit(), handlers.ToggleDeed)
	}

	stats := r.Group("/stats")
	stats.Use(middleware.AuthMiddleware())
	{
		stats.GET("/streaks", handlers.GetStreaks)
	}
}
