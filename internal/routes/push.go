package routes

import (
	"github.com/Ali-Cheikh/ramadan-duo/internal/handlers"
	"github.com/Ali-Cheikh/ramadan-duo/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterPushRoutes(r gin.IRouter) {
	push := r.Group("/push")
	{
		push.GET("/public-key", handlers.GetPushPublicKey)

		protected := push.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/subscribe", handlers.SubscribePush)
			protected.DELETE("/subscribe", handlers.UnsubscribePush)
		}
	}
}
