package model

import (
	"time"
)

// Message is a direct message between users.
type Message struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	ConversationID string    `gorm:"size:64;not null;index" json:"conversation_id"`
	SenderID       string    `gorm:"size:64;not null;index" json:"sender_id"`
	Content        string    `gorm:"type:text" json:"content"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

// MessageReaction is an emoji reaction on a direct message.
type MessageReaction struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MessageID string    `gorm:"size:64;not null;index" json:"message_id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user_id"`
	Emoji     string    `gorm:"size:16;not null" json:"emoji"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MessageReaction) TableName() string {
	return "message_reactions"
}

// MessageReadReceipt marks a message as read by a user.
type MessageReadReceipt struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MessageID string    `gorm:"size:64;not null;index" json:"message_id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user_id"`
	ReadAt    time.Time `gorm:"autoCreateTime" json:"read_at"`
}

func (MessageReadReceipt) TableName() string {
	return "message_read_receipts"
}

// Notification is delivered to UserID and attributed to ActorID. Both
// directions are personal data and are removed with either account.
type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user_id"`
	ActorID   string    `gorm:"size:64;index" json:"actor_id"`
	Type      string    `gorm:"size:32;not null" json:"type"`
	Content   string    `gorm:"size:512" json:"content"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
