package models

import (
	"time"

	"github.com/Ali-Cheikh/ramadan-duo/internal/streaks"
)

// DailyLog is one user's activity for one logical day. At most one row per
// (user, day); rows are upserted while the day is current and never edited
// once the boundary has passed.
type DailyLog struct {
	ID      string `gorm:"primaryKey;type:text" json:"id"`
	UserID  string `gorm:"not null;uniqueIndex:idx_logs_user_day" json:"userId"`
	LogDate string `gorm:"not null;uniqueIndex:idx_logs_user_day" json:"logDate"`

	Deeds streaks.DeedSet `gorm:"serializer:json" json:"deeds"`

	// PointsEarned is always the count of true flags in Deeds at write time.
	PointsEarned int `gorm:"default:0" json:"pointsEarned"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// DayLog converts the row into the shape the streak engine consumes.
func (l DailyLog) DayLog() streaks.DayLog {
	return streaks.DayLog{
		Date:   l.LogDate,
		Points: l.PointsEarned,
		Deeds:  l.Deeds,
	}
}

// DayLogs converts a slice of rows for the streak engine.
func DayLogs(logs []DailyLog) []streaks.DayLog {
	out := make([]streaks.DayLog, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.DayLog())
	}
	return out
}
