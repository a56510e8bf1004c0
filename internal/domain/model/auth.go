package model

import (
	"time"
)

// AuthAttempt records a wallet sign-in attempt. Keyed by wallet address, not
// user id; the eraser resolves the wallet first.
type AuthAttempt struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WalletAddress string    `gorm:"size:64;not null;index" json:"wallet_address"`
	Success       bool      `json:"success"`
	IPAddress     string    `gorm:"size:64" json:"ip_address"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AuthAttempt) TableName() string {
	return "auth_attempts"
}

// AuthNonce is a one-time challenge for wallet signature login.
type AuthNonce struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WalletAddress string    `gorm:"size:64;not null;index" json:"wallet_address"`
	Nonce         string    `gorm:"size:128;not null" json:"nonce"`
	ExpiresAt     time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AuthNonce) TableName() string {
	return "auth_nonces"
}

// OAuthAccount links an external identity provider account.
type OAuthAccount struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            string    `gorm:"size:64;not null;index" json:"user_id"`
	Provider          string    `gorm:"size:32;not null;uniqueIndex:idx_oauth_provider_account" json:"provider"`
	ProviderAccountID string    `gorm:"size:128;not null;uniqueIndex:idx_oauth_provider_account" json:"provider_account_id"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (OAuthAccount) TableName() string {
	return "oauth_accounts"
}

// Session is a server-side login session.
type Session struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Session) TableName() string {
	return "sessions"
}

// RevokedSession records an explicitly revoked session id.
type RevokedSession struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID string    `gorm:"size:64;not null;index" json:"session_id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user_id"`
	RevokedAt time.Time `gorm:"autoCreateTime" json:"revoked_at"`
}

func (RevokedSession) TableName() string {
	return "revoked_sessions"
}

// AdminAction is a moderation/admin action performed by an admin user.
type AdminAction struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminID   string    `gorm:"size:64;not null;index" json:"admin_id"`
	Action    string    `gorm:"size:64;not null" json:"action"`
	TargetID  string    `gorm:"size:64" json:"target_id"`
	Detail    string    `gorm:"size:512" json:"detail"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AdminAction) TableName() string {
	return "admin_actions"
}
