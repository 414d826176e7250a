package routes

import (
	"github.com/Ali-Cheikh/ramadan-duo/internal/handlers"
	"github.com/Ali-Cheikh/ramadan-duo/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAchievementRoutes(r gin.IRouter) {
	achievements := r.Group("/achievements")
	achievements.Use(middleware.AuthMiddleware())
	{
		achievements.GET("", handlers.ListAchievements)
		achievements.POST("/award", middleware.AwardRateLimit(), handlers.AwardAchievements)
	}
}
