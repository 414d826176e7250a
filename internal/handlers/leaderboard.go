package handlers

import (
	"net/http"

	"github.com/Ali-Cheikh/ramadan-duo/internal/services"
	"github.com/gin-gonic/gin"
)

// GetLeaderboard GET /leaderboard?region=
func GetLeaderboard(c *gin.Context) {
	region := c.Query("region")

	entries, err := services.MonthlyLeaderboard(region)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
