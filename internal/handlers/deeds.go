package handlers

import (
	"net/http"
	"time"

	"github.com/Ali-Cheikh/ramadan-duo/internal/database"
	"github.com/Ali-Cheikh/ramadan-duo/internal/models"
	"github.com/Ali-Cheikh/ramadan-duo/internal/services"
	"github.com/Ali-Cheikh/ramadan-duo/internal/streaks"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTodayLog GET /deeds/today
// Returns the caller's log for the current logical day, creating the empty
// placeholder row on first sight. The streak engine knows to ignore the
// placeholder until the first toggle.
func GetTodayLog(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	today := streaks.LogicalDay(time.Now())

	log, err := findOrCreateTodayLog(userID.(string), today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load today's log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"log": log, "today": today})
}

// ToggleDeed POST /deeds/toggle
// Flips one deed flag on today's log. Points are always recomputed
// server-side as the count of true flags; past days are never touched.
func ToggleDeed(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		Deed streaks.DeedKey `json:"deed" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !streaks.IsValidDeed(body.Deed) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown deed"})
		return
	}

	today := streaks.LogicalDay(time.Now())
	log, err := findOrCreateTodayLog(userID.(string), today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load today's log"})
		return
	}

	oldPoints := log.PointsEarned
	if log.Deeds == nil {
		log.Deeds = streaks.DeedSet{}
	}
	log.Deeds[body.Deed] = !log.Deeds[body.Deed]
	log.PointsEarned = streaks.CountCompleted(log.Deeds)

	if err := database.DB.Save(&log).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save log"})
		return
	}

	if delta := log.PointsEarned - oldPoints; delta != 0 {
		database.DB.Model(&models.User{}).
			Where("id = ?", userID).
			Update("month_total_points", gorm.Expr("month_total_points + ?", delta))
		services.InvalidateLeaderboard()
	}

	counters := currentCounters(userID.(string), today)

	c.JSON(http.StatusOK, gin.H{"log": log, "streaks": counters})
}

// GetStreaks GET /stats/streaks
// The immediate-feedback path: same engine as the award path.
func GetStreaks(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	today := streaks.LogicalDay(time.Now())

	var logs []models.DailyLog
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("log_date desc").
		Limit(400).
		Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	history := models.DayLogs(logs)

	c.JSON(http.StatusOK, gin.H{
		"today":    today,
		"streaks":  streaks.Calculate(history, today),
		"lifetime": streaks.ScanLifetime(history),
	})
}

func findOrCreateTodayLog(userID, today string) (models.DailyLog, error) {
	var log models.DailyLog
	err := database.DB.
		Where("user_id = ? AND log_date = ?", userID, today).
		First(&log).Error
	if err == nil {
		return log, nil
	}
	if err != gorm.ErrRecordNotFound {
		return log, err
	}

	log = models.DailyLog{
		ID:      uuid.NewString(),
		UserID:  userID,
		LogDate: today,
		Deeds:   streaks.DeedSet{},
	}
	if err := database.DB.Create(&log).Error; err != nil {
		// A concurrent request may have created the row first.
		if ferr := database.DB.
			Where("user_id = ? AND log_date = ?", userID, today).
			First(&log).Error; ferr == nil {
			return log, nil
		}
		return log, err
	}
	return log, nil
}

func currentCounters(userID, today string) streaks.Counters {
	var logs []models.DailyLog
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("log_date desc").
		Limit(100).
		Find(&logs).Error; err != nil {
		return streaks.Calculate(nil, today)
	}
	return streaks.Calculate(models.DayLogs(logs), today)
}
