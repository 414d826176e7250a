package models

import "time"

type ReminderType string

const (
	ReminderHourly     ReminderType = "hourly"
	ReminderLastChance ReminderType = "evening_last_chance"
)

// ReminderSchedule is one pending nudge for one user. The dispatcher picks
// up due rows with NotificationSent false and marks them sent afterwards.
type ReminderSchedule struct {
	ID           string       `gorm:"primaryKey;type:text" json:"id"`
	UserID       string       `gorm:"not null;index" json:"userId"`
	ReminderType ReminderType `gorm:"type:text;not null" json:"reminderType"`
	ScheduledFor time.Time    `gorm:"not null;index" json:"scheduledFor"`

	NotificationSent bool       `gorm:"default:false" json:"notificationSent"`
	SentAt           *time.Time `json:"sentAt"`

	CreatedAt time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
