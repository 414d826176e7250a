package models

import "time"

// User is the profile row. Auth itself lives outside this service; the ID is
// the subject of the bearer token.
type User struct {
	ID          string `gorm:"primaryKey;type:text" json:"id"`
	DisplayName string `gorm:"not null" json:"displayName"`
	Region      string `json:"region"`
	AvatarColor string `json:"avatarColor"`
	AvatarIcon  string `json:"avatarIcon"`

	// MonthTotalPoints is a denormalized running total used by the
	// leaderboard; refreshed on every deed toggle.
	MonthTotalPoints int `gorm:"default:0" json:"monthTotalPoints"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
