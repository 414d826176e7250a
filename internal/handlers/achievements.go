package handlers

import (
	"net/http"

	"github.com/Ali-Cheikh/ramadan-duo/internal/database"
	"github.com/Ali-Cheikh/ramadan-duo/internal/models"
	"github.com/Ali-Cheikh/ramadan-duo/internal/services"
	"github.com/gin-gonic/gin"
)

// AwardAchievements POST /achievements/award
// Runs the full eligibility evaluation for the caller. The body carries the
// client-reported live streaks as hints; the service clamps them and
// backstops with its own lifetime scan.
func AwardAchievements(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// An empty or malformed body means "no hints"; evaluation proceeds on
	// stored history alone.
	var reported services.ReportedStreaks
	_ = c.ShouldBindJSON(&reported)

	result, err := AchievementSvc.Award(c.Request.Context(), userID.(string), reported)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate achievements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":             true,
		"earnedBadges":   result.EarnedBadges,
		"eligibleBadges": result.EligibleBadges,
		"notification":   result.Notification,
	})
}

// ListAchievements GET /achievements
func ListAchievements(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var achievements []models.Achievement
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("earned_at desc").
		Find(&achievements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load achievements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}
