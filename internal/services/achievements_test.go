package services

import (
	"context"
	"testing"

	"github.com/Ali-Cheikh/ramadan-duo/internal/database"
	"github.com/Ali-Cheikh/ramadan-duo/internal/models"
	"github.com/Ali-Cheikh/ramadan-duo/internal/streaks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// seedDays writes n consecutive daily logs ending endDate, one point per day
// via a deed that feeds no count badge.
func seedDays(userID, endDate string, n int) {
	day := endDate
	for i := 0; i < n; i++ {
		database.DB.Create(&models.DailyLog{
			ID:           uuid.NewString(),
			UserID:       userID,
			LogDate:      day,
			Deeds:        streaks.DeedSet{streaks.DeedImanDhikr: true},
			PointsEarned: 1,
		})
		day = streaks.PreviousDay(day)
	}
}

func earnedTypes(userID string) []streaks.BadgeType {
	var types []streaks.BadgeType
	database.DB.Model(&models.Achievement{}).Where("user_id = ?", userID).Pluck("badge_type", &types)
	return types
}

// Reaching a 7-day streak for the first time earns both the 3-day and the
// 7-day badge in one evaluation.
func TestAward_CumulativeStreakBadges(t *testing.T) {
	SetupTestDB()
	svc := NewAchievementService(newTestPushService(newFakeSender()))

	seedDays("award_user1", "2026-02-18", 7)

	result, err := svc.Award(context.Background(), "award_user1", ReportedStreaks{DailyStreak: 7})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []streaks.BadgeType{streaks.BadgeStreak3, streaks.BadgeStreak7}, result.EarnedBadges)
	assert.ElementsMatch(t, []streaks.BadgeType{streaks.BadgeStreak3, streaks.BadgeStreak7}, earnedTypes("award_user1"))

	// Milestone values carry the thresholds.
	var streak7 models.Achievement
	database.DB.Where("user_id = ? AND badge_type = ?", "award_user1", streaks.BadgeStreak7).First(&streak7)
	assert.Equal(t, 7, streak7.MilestoneValue)
}

// A second evaluation with identical inputs writes nothing and attempts no
// notification.
func TestAward_Idempotent(t *testing.T) {
	SetupTestDB()
	sender := newFakeSender()
	svc := NewAchievementService(newTestPushService(sender))

	seedDays("award_user2", "2026-02-18", 3)
	createSubscription("award_user2", "https://push.example/award2")

	first, err := svc.Award(context.Background(), "award_user2", ReportedStreaks{DailyStreak: 3})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []streaks.BadgeType{streaks.BadgeStreak3}, first.EarnedBadges)
	assert.True(t, first.Notification.Sent)
	sentAfterFirst := sender.sentCount()

	second, err := svc.Award(context.Background(), "award_user2", ReportedStreaks{DailyStreak: 3})
	assert.NoError(t, err)
	assert.Empty(t, second.EarnedBadges)
	assert.Equal(t, ReasonNotAttempted, second.Notification.Reason)
	assert.Equal(t, sentAfterFirst, sender.sentCount())

	var count int64
	database.DB.Model(&models.Achievement{}).Where("user_id = ?", "award_user2").Count(&count)
	assert.Equal(t, int64(1), count)
}

// The lifetime scan backstops a zero reported streak: badges are never lost
// to a momentary live-streak regression.
func TestAward_LifetimeBackstop(t *testing.T) {
	SetupTestDB()
	svc := NewAchievementService(newTestPushService(newFakeSender()))

	seedDays("award_user3", "2026-01-10", 3)

	result, err := svc.Award(context.Background(), "award_user3", ReportedStreaks{})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []streaks.BadgeType{streaks.BadgeStreak3}, result.EarnedBadges)
}

// Hostile reported values are clamped, not fatal.
func TestAward_SanitizesReportedStreaks(t *testing.T) {
	SetupTestDB()
	svc := NewAchievementService(newTestPushService(newFakeSender()))

	result, err := svc.Award(context.Background(), "award_user4", ReportedStreaks{DailyStreak: -50, PerfectStreak: -1})
	assert.NoError(t, err)
	assert.Empty(t, result.EarnedBadges)
}

func TestAward_CountAndSocialBadges(t *testing.T) {
	SetupTestDB()
	svc := NewAchievementService(newTestPushService(newFakeSender()))

	// 10 days, every one with charity and quran done.
	day := "2026-02-18"
	for i := 0; i < 10; i++ {
		deeds := streaks.DeedSet{streaks.DeedSocialCharity: true, streaks.DeedImanQuran: true}
		database.DB.Create(&models.DailyLog{
			ID:           uuid.NewString(),
			UserID:       "award_user5",
			LogDate:      day,
			Deeds:        deeds,
			PointsEarned: streaks.CountCompleted(deeds),
		})
		day = streaks.PreviousDay(day)
	}

	database.DB.Create(&models.FriendRequest{
		ID:         uuid.NewString(),
		SenderID:   "award_user5",
		ReceiverID: "award_friend",
		Status:     models.FriendRequestAccepted,
	})

	result, err := svc.Award(context.Background(), "award_user5", ReportedStreaks{})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []streaks.BadgeType{
		streaks.BadgeStreak3,
		streaks.BadgeStreak7,
		streaks.BadgeCharityWarrior,
		streaks.BadgeQuranMaster,
		streaks.BadgeFirstFriend,
	}, result.EarnedBadges)

	// Count badges record the actual counts at evaluation time.
	var charity models.Achievement
	database.DB.Where("user_id = ? AND badge_type = ?", "award_user5", streaks.BadgeCharityWarrior).First(&charity)
	assert.Equal(t, 10, charity.MilestoneValue)
}

// A perfect day anywhere in history qualifies the perfect-day badge even
// when the client reports nothing.
func TestAward_PerfectDayFromHistory(t *testing.T) {
	SetupTestDB()
	svc := NewAchievementService(newTestPushService(newFakeSender()))

	deeds := streaks.DeedSet{}
	for _, d := range streaks.Deeds {
		deeds[d.Key] = true
	}
	database.DB.Create(&models.DailyLog{
		ID:           uuid.NewString(),
		UserID:       "award_user6",
		LogDate:      "2026-02-01",
		Deeds:        deeds,
		PointsEarned: streaks.TotalDeeds,
	})

	result, err := svc.Award(context.Background(), "award_user6", ReportedStreaks{})
	assert.NoError(t, err)
	assert.Contains(t, result.EarnedBadges, streaks.BadgePerfectDay)
}

// notified_at is stamped only after a successful send and only once.
func TestAward_NotifiedAtStamping(t *testing.T) {
	SetupTestDB()
	sender := newFakeSender()
	svc := NewAchievementService(newTestPushService(sender))

	seedDays("award_user7", "2026-02-18", 3)
	createSubscription("award_user7", "https://push.example/award7")

	result, err := svc.Award(context.Background(), "award_user7", ReportedStreaks{DailyStreak: 3})
	assert.NoError(t, err)
	assert.True(t, result.Notification.Sent)

	var badge models.Achievement
	database.DB.Where("user_id = ? AND badge_type = ?", "award_user7", streaks.BadgeStreak3).First(&badge)
	assert.NotNil(t, badge.NotifiedAt)
}

// When every send fails the badge still exists but stays unnotified.
func TestAward_DeliveryFailureLeavesUnnotified(t *testing.T) {
	SetupTestDB()
	sender := newFakeSender()
	sender.outcomes["https://push.example/award8"] = SendFailed
	svc := NewAchievementService(newTestPushService(sender))

	seedDays("award_user8", "2026-02-18", 3)
	createSubscription("award_user8", "https://push.example/award8")

	result, err := svc.Award(context.Background(), "award_user8", ReportedStreaks{DailyStreak: 3})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []streaks.BadgeType{streaks.BadgeStreak3}, result.EarnedBadges)
	assert.False(t, result.Notification.Sent)
	assert.Equal(t, ReasonDeliveryFailed, result.Notification.Reason)

	var badge models.Achievement
	database.DB.Where("user_id = ? AND badge_type = ?", "award_user8", streaks.BadgeStreak3).First(&badge)
	assert.Nil(t, badge.NotifiedAt)
}
