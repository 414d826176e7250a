package streaks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func badgeTypes(candidates []Candidate) []BadgeType {
	out := make([]BadgeType, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Badge)
	}
	return out
}

func TestEligibleBadges_NoActivity(t *testing.T) {
	assert.Empty(t, EligibleBadges(EligibilityInput{}))
}

// Streak thresholds are cumulative: a streak of exactly 7 qualifies for both
// the 3-day and the 7-day badge.
func TestEligibleBadges_CumulativeStreaks(t *testing.T) {
	candidates := EligibleBadges(EligibilityInput{DailyStreak: 7})
	assert.ElementsMatch(t, []BadgeType{BadgeStreak3, BadgeStreak7}, badgeTypes(candidates))

	candidates = EligibleBadges(EligibilityInput{DailyStreak: 30})
	assert.ElementsMatch(t,
		[]BadgeType{BadgeStreak3, BadgeStreak7, BadgeStreak14, BadgeStreak30},
		badgeTypes(candidates))
}

func TestEligibleBadges_MilestoneValues(t *testing.T) {
	candidates := EligibleBadges(EligibilityInput{
		DailyStreak:  10,
		CharityCount: 8,
		QuranCount:   12,
		FriendCount:  3,
	})

	values := make(map[BadgeType]int, len(candidates))
	for _, c := range candidates {
		values[c.Badge] = c.Milestone
	}

	// Streak badges carry the threshold, count badges the actual count, and
	// the social badge its fixed threshold.
	assert.Equal(t, 3, values[BadgeStreak3])
	assert.Equal(t, 7, values[BadgeStreak7])
	assert.Equal(t, 8, values[BadgeCharityWarrior])
	assert.Equal(t, 12, values[BadgeQuranMaster])
	assert.Equal(t, 1, values[BadgeFirstFriend])
}

func TestEligibleBadges_PerfectDay(t *testing.T) {
	candidates := EligibleBadges(EligibilityInput{PerfectStreak: 2})
	assert.ElementsMatch(t, []BadgeType{BadgePerfectDay}, badgeTypes(candidates))
	assert.Equal(t, 2, candidates[0].Milestone)
}

func TestEligibleBadges_BelowThresholds(t *testing.T) {
	candidates := EligibleBadges(EligibilityInput{
		DailyStreak:  2,
		CharityCount: 4,
		QuranCount:   9,
	})
	assert.Empty(t, candidates)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5))
	assert.Equal(t, 0, Clamp(math.NaN()))
	assert.Equal(t, 0, Clamp(math.Inf(1)))
	assert.Equal(t, 0, Clamp(math.Inf(-1)))
	assert.Equal(t, 3, Clamp(3.9))
	assert.Equal(t, 7, Clamp(7))
}

func TestBadgeLabel(t *testing.T) {
	assert.Equal(t, "Perfect Day ✨", BadgeLabel(BadgePerfectDay))
	assert.Equal(t, "mystery", BadgeLabel(BadgeType("mystery")))
}

func TestDeedTable(t *testing.T) {
	assert.Len(t, Deeds, TotalDeeds)

	perCategory := map[DeedCategory]int{}
	for _, d := range Deeds {
		perCategory[d.Category]++
	}
	for _, cat := range Categories {
		assert.Equal(t, 3, perCategory[cat])
	}

	assert.True(t, IsValidDeed(DeedImanQuran))
	assert.False(t, IsValidDeed(DeedKey("deed_unknown")))
}

func TestCountCompletedAndCategoryComplete(t *testing.T) {
	deeds := partialDay(CategoryPrayer)
	assert.Equal(t, 9, CountCompleted(deeds))
	assert.False(t, IsCategoryComplete(deeds, CategoryPrayer))
	assert.True(t, IsCategoryComplete(deeds, CategoryIman))
}
