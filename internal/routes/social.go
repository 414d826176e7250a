package routes

import (
	"github.com/Ali-Cheikh/ramadan-duo/internal/handlers"
	"github.com/Ali-Cheikh/ramadan-duo/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterSocialRoutes(r gin.IRouter) {
	friends := r.Group("/friends")
	friends.Use(middleware.AuthMiddleware())
	{
		friends.GET("", handlers.ListFriends)
		friends.POST("/requests", handlers.SendFriendRequest)
		friends.POST("/requests/:id/accept", handlers.RespondFriendRequest(true))
		friends.POST("/requests/:id/reject", handlers.RespondFriendRequest(false))
	}

	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", handlers.GetProfile)
		profile.PUT("", handlers.UpsertProfile)
	}

	// Leaderboard is public read
	r.GET("/leaderboard", handlers.GetLeaderboard)
}
