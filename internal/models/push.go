package models

import "time"

// PushSubscription is one device's notification channel: an opaque endpoint
// plus the two keys needed to encrypt payloads for it. Rows are deleted when
// the push provider reports the endpoint permanently gone (404/410) — that
// is the only garbage collection stale subscriptions get.
type PushSubscription struct {
	ID       string `gorm:"primaryKey;type:text" json:"id"`
	UserID   string `gorm:"not null;index" json:"userId"`
	Endpoint string `gorm:"not null;uniqueIndex" json:"endpoint"`
	P256dh   string `gorm:"not null" json:"p256dh"`
	Auth     string `gorm:"not null" json:"auth"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
