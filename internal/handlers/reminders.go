package handlers

import (
	"net/http"
	"time"

	"github.com/Ali-Cheikh/ramadan-duo/internal/database"
	"github.com/Ali-Cheikh/ramadan-duo/internal/models"
	"github.com/Ali-Cheikh/ramadan-duo/internal/streaks"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SendDueReminders POST /reminders/send
// Cron-triggered sweep of due reminder schedules. The Redis counter keeps a
// misconfigured scheduler from spamming the push provider.
func SendDueReminders(c *gin.Context) {
	allowed, _ := database.CheckRateLimit("reminders:send", 4, time.Minute)
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many trigger calls"})
		return
	}

	result, err := ReminderSvc.DispatchDue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to dispatch reminders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "result": result})
}

// ScheduleEveningReminder POST /reminders/schedule
// Queues the "last chance" nudge for the caller, three hours before the
// next 03:30 reset. Idempotent per logical day.
func ScheduleEveningReminder(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	_, dayEnd := streaks.DayWindow(time.Now())
	scheduledFor := dayEnd.Add(-3 * time.Hour)

	var existing models.ReminderSchedule
	err := database.DB.
		Where("user_id = ? AND reminder_type = ? AND scheduled_for = ?",
			userID, models.ReminderLastChance, scheduledFor).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"reminder": existing})
		return
	}

	reminder := models.ReminderSchedule{
		ID:           uuid.NewString(),
		UserID:       userID.(string),
		ReminderType: models.ReminderLastChance,
		ScheduledFor: scheduledFor,
	}
	if err := database.DB.Create(&reminder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule reminder"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reminder": reminder})
}
