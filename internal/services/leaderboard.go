package services

import (
	"fmt"
	"time"

	"github.com/Ali-Cheikh/ramadan-duo/internal/database"
	"github.com/Ali-Cheikh/ramadan-duo/internal/models"
)

const leaderboardLimit = 50

// LeaderboardEntry is one ranked row of the monthly board.
type LeaderboardEntry struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Region      string `json:"region"`
	AvatarColor string `json:"avatarColor"`
	AvatarIcon  string `json:"avatarIcon"`
	Points      int    `json:"points"`
	Rank        int    `json:"rank"`
}

// MonthlyLeaderboard ranks users by their denormalized monthly totals,
// optionally filtered by region, with a short Redis cache in front.
func MonthlyLeaderboard(region string) ([]LeaderboardEntry, error) {
	cacheKey := fmt.Sprintf("leaderboard:month:%s", region)

	var cached []LeaderboardEntry
	if err := database.CacheGet(cacheKey, &cached); err == nil {
		return cached, nil
	}

	query := database.DB.Model(&models.User{}).
		Order("month_total_points desc").
		Limit(leaderboardLimit)
	if region != "" {
		query = query.Where("region = ?", region)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			UserID:      u.ID,
			DisplayName: u.DisplayName,
			Region:      u.Region,
			AvatarColor: u.AvatarColor,
			AvatarIcon:  u.AvatarIcon,
			Points:      u.MonthTotalPoints,
			Rank:        i + 1,
		})
	}

	// Best effort; a cold cache just means one extra query.
	database.CacheSet(cacheKey, entries, 60*time.Second)

	return entries, nil
}

// InvalidateLeaderboard drops every cached board after a points change.
func InvalidateLeaderboard() {
	database.CacheInvalidate("leaderboard:month:*")
}
