package models

import "time"

type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestRejected FriendRequestStatus = "rejected"
)

// FriendRequest links two users. The count of accepted rows touching a user
// feeds the social badge.
type FriendRequest struct {
	ID         string              `gorm:"primaryKey;type:text" json:"id"`
	SenderID   string              `gorm:"not null;uniqueIndex:idx_friend_pair" json:"senderId"`
	ReceiverID string              `gorm:"not null;uniqueIndex:idx_friend_pair" json:"receiverId"`
	Status     FriendRequestStatus `gorm:"type:text;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}
