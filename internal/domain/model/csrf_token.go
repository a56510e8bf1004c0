package model

import (
	"time"
)

// CsrfToken is a server-side single-use anti-forgery token. A token flips
// from unused to used exactly once; a second validation is a replay.
type CsrfToken struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"token"`
	UserID    *string   `gorm:"size:64;index" json:"user_id,omitempty"`
	SessionID *string   `gorm:"size:64;index" json:"session_id,omitempty"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	Used      bool      `gorm:"default:false" json:"used"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (CsrfToken) TableName() string {
	return "csrf_tokens"
}

// Expired reports whether the token is invalid at the given instant.
func (t *CsrfToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
