package model

import (
	"time"
)

// Audit actions recorded by this service.
const (
	AuditActionAccountDeleted = "account_deleted"
	AuditActionCsrfReplay     = "csrf_replay_suspected"
)

// AuditLog is an append-only audit trail entry. Identifiers are stored as
// truncated prefixes; full tokens and wallet addresses never reach the log.
type AuditLog struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Action       string    `gorm:"size:64;not null;index" json:"action"`
	ActorPrefix  string    `gorm:"size:16" json:"actor_prefix"`
	WalletPrefix string    `gorm:"size:16" json:"wallet_prefix"`
	IPAddress    string    `gorm:"size:64" json:"ip_address"`
	Success      bool      `json:"success"`
	Detail       string    `gorm:"size:512" json:"detail"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Prefix truncates an identifier for audit logging.
func Prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
