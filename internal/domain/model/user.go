package model

import (
	"time"
)

// SentinelUserID is the id of the shared "deleted user" account that
// anonymized content is repointed to. The sentinel is created idempotently
// and is never deleted or banned.
const SentinelUserID = "deleted-user"

// SentinelUsername is the fixed placeholder identity of the sentinel account.
const SentinelUsername = "deleted"

// User is the root account entity.
type User struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"`
	Username      string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	DisplayName   string    `gorm:"size:128" json:"display_name"`
	Email         *string   `gorm:"size:255" json:"email,omitempty"`
	WalletAddress *string   `gorm:"size:64;index" json:"wallet_address,omitempty"`
	IsAdmin       bool      `gorm:"default:false" json:"is_admin"`
	IsBanned      bool      `gorm:"default:false" json:"is_banned"`
	Level         int       `gorm:"default:1" json:"level"`
	XP            int       `gorm:"default:0" json:"xp"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// NewSentinelUser returns the fixed deleted-user placeholder row.
func NewSentinelUser() *User {
	return &User{
		ID:          SentinelUserID,
		Username:    SentinelUsername,
		DisplayName: "Deleted User",
	}
}

// Profile is the 1:1 public profile of a user.
type Profile struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"uniqueIndex;size:64;not null" json:"user_id"`
	Bio       string    `gorm:"size:1024" json:"bio"`
	AvatarURL string    `gorm:"size:512" json:"avatar_url"`
	BannerURL string    `gorm:"size:512" json:"banner_url"`
	Location  string    `gorm:"size:128" json:"location"`
	Website   string    `gorm:"size:512" json:"website"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
