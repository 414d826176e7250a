package handlers

import (
	"net/http"

	"github.com/Ali-Cheikh/ramadan-duo/internal/database"
	"github.com/Ali-Cheikh/ramadan-duo/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProfile GET /profile
func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": user})
}

// UpsertProfile PUT /profile
// Creates or updates the caller's profile row. The row must exist before
// the leaderboard or friend endpoints can see the user.
func UpsertProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		DisplayName string `json:"displayName" binding:"required"`
		Region      string `json:"region"`
		AvatarColor string `json:"avatarColor"`
		AvatarIcon  string `json:"avatarIcon"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing displayName"})
		return
	}

	var user models.User
	err := database.DB.First(&user, "id = ?", userID).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{ID: userID.(string)}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	user.DisplayName = body.DisplayName
	user.Region = body.Region
	user.AvatarColor = body.AvatarColor
	user.AvatarIcon = body.AvatarIcon

	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": user})
}
