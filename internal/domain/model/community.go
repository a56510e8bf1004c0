package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report target types. Reports can point at users, posts or comments; the
// typed target prevents id collisions across tables during erasure.
const (
	ReportTargetUser    = "user"
	ReportTargetPost    = "post"
	ReportTargetComment = "comment"
)

// Community is a token-gated group.
type Community struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	Name        string `gorm:"uniqueIndex;size:128;not null" json:"name"`
	Description string `gorm:"size:1024" json:"description"`
	CreatorID   string `gorm:"size:64;not null;index" json:"creator_id"`

	// Token gate; nil fields mean no gate of that kind.
	GateTokenAddress *string          `gorm:"size:64" json:"gate_token_address,omitempty"`
	GateMinBalance   *decimal.Decimal `gorm:"type:decimal(30,18)" json:"gate_min_balance,omitempty"`
	GateNFTAddress   *string          `gorm:"size:64" json:"gate_nft_address,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Community) TableName() string {
	return "communities"
}

// TokenGated reports whether joining the community requires a wallet check.
func (c *Community) TokenGated() bool {
	return c.GateTokenAddress != nil || c.GateNFTAddress != nil
}

// CommunityMembership links a user to a community.
type CommunityMembership struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CommunityID string    `gorm:"size:64;not null;uniqueIndex:idx_memberships_edge" json:"community_id"`
	UserID      string    `gorm:"size:64;not null;uniqueIndex:idx_memberships_edge" json:"user_id"`
	Role        string    `gorm:"size:16;default:'member'" json:"role"`
	JoinedAt    time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

func (CommunityMembership) TableName() string {
	return "community_memberships"
}

// ModeratorGrant records a moderator role granted inside a community.
type ModeratorGrant struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CommunityID string    `gorm:"size:64;not null;index" json:"community_id"`
	UserID      string    `gorm:"size:64;not null;index" json:"user_id"`
	GrantedBy   string    `gorm:"size:64" json:"granted_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ModeratorGrant) TableName() string {
	return "moderator_grants"
}

// Report is a moderation report with a typed target.
type Report struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ReporterID string    `gorm:"size:64;not null;index" json:"reporter_id"`
	TargetType string    `gorm:"size:16;not null;index:idx_reports_target" json:"target_type"`
	TargetID   string    `gorm:"size:64;not null;index:idx_reports_target" json:"target_id"`
	Reason     string    `gorm:"size:512" json:"reason"`
	Status     string    `gorm:"size:16;default:'open'" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Report) TableName() string {
	return "reports"
}

// MutedPhrase is a per-user content filter entry.
type MutedPhrase struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user_id"`
	Phrase    string    `gorm:"size:128;not null" json:"phrase"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MutedPhrase) TableName() string {
	return "muted_phrases"
}

// HiddenToken hides a token from a user's wallet view.
type HiddenToken struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string    `gorm:"size:64;not null;index" json:"user_id"`
	TokenAddress string    `gorm:"size:64;not null" json:"token_address"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (HiddenToken) TableName() string {
	return "hidden_tokens"
}
