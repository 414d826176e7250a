package models

import (
	"time"

	"github.com/Ali-Cheikh/ramadan-duo/internal/streaks"
)

// Achievement is a permanently earned badge. The unique index on
// (user_id, badge_type) is the sole guard against double-awarding: two
// concurrent evaluations may both attempt the insert and the constraint
// decides cleanly.
type Achievement struct {
	ID        string            `gorm:"primaryKey;type:text" json:"id"`
	UserID    string            `gorm:"not null;uniqueIndex:idx_achievements_user_badge" json:"userId"`
	BadgeType streaks.BadgeType `gorm:"type:text;not null;uniqueIndex:idx_achievements_user_badge" json:"badgeType"`

	// MilestoneValue is the streak length or count that triggered the badge.
	MilestoneValue int `json:"milestoneValue"`

	EarnedAt   time.Time  `gorm:"autoCreateTime" json:"earnedAt"`
	NotifiedAt *time.Time `json:"notifiedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
