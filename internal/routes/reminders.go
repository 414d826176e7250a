package routes

import (
	"github.com/Ali-Cheikh/ramadan-duo/internal/handlers"
	"github.com/Ali-Cheikh/ramadan-duo/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterReminderRoutes(r gin.IRouter) {
	reminders := r.Group("/reminders")
	{
		// Scheduler-only trigger
		reminders.POST("/send", middleware.CronRateLimit(), middleware.CronAuthMiddleware(), handlers.SendDueReminders)

		protected := reminders.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/schedule", handlers.ScheduleEveningReminder)
		}
	}
}
