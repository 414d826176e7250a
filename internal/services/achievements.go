package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Ali-Cheikh/ramadan-duo/internal/database"
	"github.com/Ali-Cheikh/ramadan-duo/internal/models"
	"github.com/Ali-Cheikh/ramadan-duo/internal/streaks"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// historyWindow bounds the history read on every evaluation. 400 days is
// well past every threshold the badge table tests.
const historyWindow = 400

// ReportedStreaks carries the client-reported live streak values. They are
// hints, not trusted input: the evaluator clamps them and takes the max
// against its own lifetime scan.
type ReportedStreaks struct {
	DailyStreak   float64 `json:"dailyStreak"`
	PerfectStreak float64 `json:"perfectStreak"`
}

// AwardResult is what the award endpoint returns to the caller. The
// dispatcher outcome rides along so the UI can distinguish "earned and
// notified" from "earned, not notified (reason X)".
type AwardResult struct {
	EarnedBadges   []streaks.BadgeType `json:"earnedBadges"`
	EligibleBadges []streaks.BadgeType `json:"eligibleBadges"`
	Notification   DispatchResult      `json:"notification"`
}

// AchievementService evaluates milestone eligibility and awards badges.
type AchievementService struct {
	Push *PushService
}

func NewAchievementService(push *PushService) *AchievementService {
	return &AchievementService{Push: push}
}

// Award runs one full evaluation for the user. Calling it twice with the
// same inputs writes nothing the second time: the (user, badge_type)
// uniqueness is the sole source of truth for "already earned".
func (s *AchievementService) Award(ctx context.Context, userID string, reported ReportedStreaks) (AwardResult, error) {
	result := AwardResult{
		EarnedBadges:   []streaks.BadgeType{},
		EligibleBadges: []streaks.BadgeType{},
		Notification:   NotAttempted(),
	}

	var logs []models.DailyLog
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("log_date desc").
		Limit(historyWindow).
		Find(&logs).Error; err != nil {
		return result, fmt.Errorf("load daily logs: %w", err)
	}

	history := models.DayLogs(logs)
	lifetime := streaks.ScanLifetime(history)

	charityCount := 0
	quranCount := 0
	for _, log := range history {
		if log.Deeds[streaks.DeedSocialCharity] {
			charityCount++
		}
		if log.Deeds[streaks.DeedImanQuran] {
			quranCount++
		}
	}

	var friendCount int64
	if err := database.DB.Model(&models.FriendRequest{}).
		Where("status = ? AND (sender_id = ? OR receiver_id = ?)", models.FriendRequestAccepted, userID, userID).
		Count(&friendCount).Error; err != nil {
		return result, fmt.Errorf("count friends: %w", err)
	}

	// The lifetime scan backstops the live value so a momentary regression
	// (late write, restart) never loses an earned milestone.
	effectiveDaily := streaks.Clamp(reported.DailyStreak)
	if lifetime.MaxDailyStreak > effectiveDaily {
		effectiveDaily = lifetime.MaxDailyStreak
	}
	effectivePerfect := streaks.Clamp(reported.PerfectStreak)
	if lifetime.HasPerfectDay && effectivePerfect < 1 {
		effectivePerfect = 1
	}

	candidates := streaks.EligibleBadges(streaks.EligibilityInput{
		DailyStreak:   effectiveDaily,
		PerfectStreak: effectivePerfect,
		CharityCount:  charityCount,
		QuranCount:    quranCount,
		FriendCount:   int(friendCount),
	})
	if len(candidates) == 0 {
		return result, nil
	}

	candidateTypes := make([]streaks.BadgeType, 0, len(candidates))
	for _, c := range candidates {
		candidateTypes = append(candidateTypes, c.Badge)
	}
	result.EligibleBadges = candidateTypes

	var existingTypes []streaks.BadgeType
	if err := database.DB.Model(&models.Achievement{}).
		Where("user_id = ? AND badge_type IN ?", userID, candidateTypes).
		Pluck("badge_type", &existingTypes).Error; err != nil {
		return result, fmt.Errorf("read existing achievements: %w", err)
	}

	existing := make(map[streaks.BadgeType]bool, len(existingTypes))
	for _, t := range existingTypes {
		existing[t] = true
	}

	var missing []models.Achievement
	var missingTypes []streaks.BadgeType
	for _, c := range candidates {
		if existing[c.Badge] {
			continue
		}
		missing = append(missing, models.Achievement{
			ID:             uuid.NewString(),
			UserID:         userID,
			BadgeType:      c.Badge,
			MilestoneValue: c.Milestone,
		})
		missingTypes = append(missingTypes, c.Badge)
	}
	if len(missing) == 0 {
		return result, nil
	}

	// Concurrent evaluations may race to this insert; the unique index on
	// (user_id, badge_type) settles it without an error.
	if err := database.DB.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&missing).Error; err != nil {
		return result, fmt.Errorf("store achievements: %w", err)
	}
	result.EarnedBadges = missingTypes

	result.Notification = s.Push.NotifyBadges(ctx, userID, missingTypes)
	if result.Notification.Sent {
		// Stamp only rows still null so a retried evaluation cannot claim a
		// second notification for the same badge.
		now := time.Now()
		if err := database.DB.Model(&models.Achievement{}).
			Where("user_id = ? AND badge_type IN ? AND notified_at IS NULL", userID, missingTypes).
			Update("notified_at", now).Error; err != nil {
			return result, fmt.Errorf("stamp notified_at: %w", err)
		}
	}

	return result, nil
}
