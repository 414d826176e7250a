package streaks

import "math"

// BadgeType enumerates every badge the app can award. Badges are permanent:
// once a row for (user, badge_type) exists it is never re-evaluated.
type BadgeType string

const (
	BadgeStreak3        BadgeType = "streak_3"
	BadgeStreak7        BadgeType = "streak_7"
	BadgeStreak14       BadgeType = "streak_14"
	BadgeStreak30       BadgeType = "streak_30"
	BadgePerfectDay     BadgeType = "perfect_day"
	BadgeFirstFriend    BadgeType = "first_friend"
	BadgeCharityWarrior BadgeType = "charity_warrior"
	BadgeQuranMaster    BadgeType = "quran_master"
)

// BadgeLabels maps badge types to their display names.
var BadgeLabels = map[BadgeType]string{
	BadgeStreak3:        "3-Day Streak 🔥",
	BadgeStreak7:        "7-Day Streak 🎯",
	BadgeStreak14:       "2-Week Champion 👑",
	BadgeStreak30:       "30-Day Legend ⭐",
	BadgePerfectDay:     "Perfect Day ✨",
	BadgeFirstFriend:    "Social Butterfly 🦋",
	BadgeCharityWarrior: "Charity Warrior 💝",
	BadgeQuranMaster:    "Quran Master 📖",
}

// BadgeLabel returns the display name, falling back to the raw type for
// anything unknown.
func BadgeLabel(t BadgeType) string {
	if label, ok := BadgeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Award thresholds.
const (
	CharityThreshold = 5
	QuranThreshold   = 10
	FriendThreshold  = 1
)

// StreakThresholds in ascending order. Thresholds are cumulative: a streak
// of 10 is a candidate for both streak_3 and streak_7.
var StreakThresholds = []struct {
	Days  int
	Badge BadgeType
}{
	{3, BadgeStreak3},
	{7, BadgeStreak7},
	{14, BadgeStreak14},
	{30, BadgeStreak30},
}

// Candidate is a badge the user currently qualifies for, together with the
// milestone value that triggered it.
type Candidate struct {
	Badge     BadgeType
	Milestone int
}

// EligibilityInput carries everything the threshold table is tested against.
type EligibilityInput struct {
	DailyStreak   int
	PerfectStreak int
	CharityCount  int
	QuranCount    int
	FriendCount   int
}

// Clamp floors a possibly hostile numeric input to a non-negative integer.
// Negative, NaN and infinite values all become 0.
func Clamp(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return int(math.Floor(v))
}

// EligibleBadges builds the candidate set for the input. It does not know
// what has already been awarded; the evaluator filters against the store.
func EligibleBadges(in EligibilityInput) []Candidate {
	var candidates []Candidate

	for _, st := range StreakThresholds {
		if in.DailyStreak >= st.Days {
			candidates = append(candidates, Candidate{st.Badge, st.Days})
		}
	}
	if in.PerfectStreak >= 1 {
		candidates = append(candidates, Candidate{BadgePerfectDay, in.PerfectStreak})
	}
	if in.CharityCount >= CharityThreshold {
		candidates = append(candidates, Candidate{BadgeCharityWarrior, in.CharityCount})
	}
	if in.QuranCount >= QuranThreshold {
		candidates = append(candidates, Candidate{BadgeQuranMaster, in.QuranCount})
	}
	if in.FriendCount >= FriendThreshold {
		candidates = append(candidates, Candidate{BadgeFirstFriend, FriendThreshold})
	}

	return candidates
}
