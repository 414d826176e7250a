package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ali-Cheikh/ramadan-duo/internal/database"
	"github.com/Ali-Cheikh/ramadan-duo/internal/models"
	"github.com/Ali-Cheikh/ramadan-duo/internal/streaks"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAwardAchievements_EndToEnd(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)
	useFakePush()

	// Three active days ending today.
	day := "2026-02-18"
	for i := 0; i < 3; i++ {
		deeds := streaks.DeedSet{streaks.DeedTummyFast: true}
		database.DB.Create(&models.DailyLog{
			ID: uuid.NewString(), UserID: "ach_h_user1", LogDate: day,
			Deeds: deeds, PointsEarned: 1,
		})
		day = streaks.PreviousDay(day)
	}

	w := httptest.NewRecorder()
	c := authedContext(w, "ach_h_user1", "POST", `{"dailyStreak":3,"perfectStreak":0}`)
	AwardAchievements(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		EarnedBadges []streaks.BadgeType `json:"earnedBadges"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.ElementsMatch(t, []streaks.BadgeType{streaks.BadgeStreak3}, response.EarnedBadges)

	// Second call earns nothing more.
	w = httptest.NewRecorder()
	c = authedContext(w, "ach_h_user1", "POST", `{"dailyStreak":3,"perfectStreak":0}`)
	AwardAchievements(c)
	assert.Equal(t, http.StatusOK, w.Code)

	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Empty(t, response.EarnedBadges)
}

func TestListAchievements(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.Achievement{
		ID: uuid.NewString(), UserID: "ach_h_user2",
		BadgeType: streaks.BadgePerfectDay, MilestoneValue: 1,
	})

	w := httptest.NewRecorder()
	c := authedContext(w, "ach_h_user2", "GET", "")
	ListAchievements(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "perfect_day")
}
