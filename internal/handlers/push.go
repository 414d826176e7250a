package handlers

import (
	"net/http"

	"github.com/Ali-Cheikh/ramadan-duo/internal/config"
	"github.com/Ali-Cheikh/ramadan-duo/internal/database"
	"github.com/Ali-Cheikh/ramadan-duo/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// GetPushPublicKey GET /push/public-key
func GetPushPublicKey(c *gin.Context) {
	if !config.AppConfig.PushConfigured() {
		c.JSON(http.StatusOK, gin.H{"configured": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"configured": true,
		"publicKey":  config.AppConfig.VapidPublicKey,
	})
}

type subscribeBody struct {
	Endpoint string `json:"endpoint" binding:"required"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

// SubscribePush POST /push/subscribe
// Upserts by endpoint: re-subscribing the same browser refreshes the keys
// and moves the endpoint to the calling user.
func SubscribePush(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body subscribeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription"})
		return
	}

	sub := models.PushSubscription{
		ID:       uuid.NewString(),
		UserID:   userID.(string),
		Endpoint: body.Endpoint,
		P256dh:   body.Keys.P256dh,
		Auth:     body.Keys.Auth,
	}

	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "p256dh", "auth", "updated_at"}),
	}).Create(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store subscription"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed"})
}

// UnsubscribePush DELETE /push/subscribe
func UnsubscribePush(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		Endpoint string `json:"endpoint" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing endpoint"})
		return
	}

	database.DB.
		Where("user_id = ? AND endpoint = ?", userID, body.Endpoint).
		Delete(&models.PushSubscription{})

	c.JSON(http.StatusOK, gin.H{"message": "Unsubscribed"})
}
