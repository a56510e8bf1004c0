package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RedactedTipMessage replaces the free-text message of a tip when either
// party deletes their account. Amount, token and tx hash stay intact for the
// financial audit trail.
const RedactedTipMessage = "[deleted]"

// Tip is an on-chain token transfer between two users, recorded by hash.
type Tip struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID     string          `gorm:"size:64;not null;index" json:"sender_id"`
	RecipientID  string          `gorm:"size:64;not null;index" json:"recipient_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(30,18);not null" json:"amount"`
	TokenSymbol  string          `gorm:"size:16;not null" json:"token_symbol"`
	TokenAddress string          `gorm:"size:64" json:"token_address"`
	TxHash       string          `gorm:"size:128;uniqueIndex;not null" json:"tx_hash"`
	Message      string          `gorm:"size:512" json:"message"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Tip) TableName() string {
	return "tips"
}
