package handlers

import (
	"net/http"

	"github.com/Ali-Cheikh/ramadan-duo/internal/database"
	"github.com/Ali-Cheikh/ramadan-duo/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SendFriendRequest POST /friends/requests
func SendFriendRequest(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		ReceiverID string `json:"receiverId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing receiverId"})
		return
	}
	if body.ReceiverID == userID.(string) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot befriend yourself"})
		return
	}

	var receiver models.User
	if err := database.DB.First(&receiver, "id = ?", body.ReceiverID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	request := models.FriendRequest{
		ID:         uuid.NewString(),
		SenderID:   userID.(string),
		ReceiverID: body.ReceiverID,
		Status:     models.FriendRequestPending,
	}
	if err := database.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Request already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"request": request})
}

// RespondFriendRequest POST /friends/requests/:id/accept|reject
func RespondFriendRequest(accept bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		requestID := c.Param("id")

		var request models.FriendRequest
		if err := database.DB.First(&request, "id = ?", requestID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		if request.ReceiverID != userID.(string) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		if request.Status != models.FriendRequestPending {
			c.JSON(http.StatusConflict, gin.H{"error": "Request already handled"})
			return
		}

		request.Status = models.FriendRequestRejected
		if accept {
			request.Status = models.FriendRequestAccepted
		}
		if err := database.DB.Save(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"request": request})
	}
}

// ListFriends GET /friends
func ListFriends(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var accepted []models.FriendRequest
	if err := database.DB.
		Where("status = ? AND (sender_id = ? OR receiver_id = ?)", models.FriendRequestAccepted, userID, userID).
		Find(&accepted).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load friends"})
		return
	}

	friendIDs := make([]string, 0, len(accepted))
	for _, r := range accepted {
		if r.SenderID == userID.(string) {
			friendIDs = append(friendIDs, r.ReceiverID)
		} else {
			friendIDs = append(friendIDs, r.SenderID)
		}
	}

	var friends []models.User
	if len(friendIDs) > 0 {
		if err := database.DB.Where("id IN ?", friendIDs).Find(&friends).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load friends"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"friends": friends, "count": len(friendIDs)})
}
