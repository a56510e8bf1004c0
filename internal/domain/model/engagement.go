package model

import (
	"time"
)

// Activity is a feed entry of a user's recent actions.
type Activity struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user_id"`
	Type      string    `gorm:"size:32;not null" json:"type"`
	Detail    string    `gorm:"size:512" json:"detail"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Activity) TableName() string {
	return "activities"
}

// Streak tracks consecutive-day activity for the XP system.
type Streak struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string    `gorm:"uniqueIndex;size:64;not null" json:"user_id"`
	Current      int       `gorm:"default:0" json:"current"`
	Longest      int       `gorm:"default:0" json:"longest"`
	LastActiveAt time.Time `json:"last_active_at"`
}

func (Streak) TableName() string {
	return "streaks"
}

// UserAchievement is an earned achievement.
type UserAchievement struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        string    `gorm:"size:64;not null;index" json:"user_id"`
	AchievementID string    `gorm:"size:64;not null" json:"achievement_id"`
	EarnedAt      time.Time `gorm:"autoCreateTime" json:"earned_at"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}

// Advertisement is a user-created ad campaign.
type Advertisement struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatorID string    `gorm:"size:64;not null;index" json:"creator_id"`
	Title     string    `gorm:"size:256;not null" json:"title"`
	ImageURL  string    `gorm:"size:512" json:"image_url"`
	TargetURL string    `gorm:"size:512" json:"target_url"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Advertisement) TableName() string {
	return "advertisements"
}

// AdInteraction records an impression or click on an ad.
type AdInteraction struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user_id"`
	AdID      string    `gorm:"size:64;not null;index" json:"ad_id"`
	Kind      string    `gorm:"size:16;not null" json:"kind"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AdInteraction) TableName() string {
	return "ad_interactions"
}

// Upload is a user-owned media upload.
type Upload struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user_id"`
	URL       string    `gorm:"size:512;not null" json:"url"`
	Kind      string    `gorm:"size:16" json:"kind"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Upload) TableName() string {
	return "uploads"
}

// ContactSubmission is a support/contact form entry.
type ContactSubmission struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:64;index" json:"user_id"`
	Subject   string    `gorm:"size:256" json:"subject"`
	Body      string    `gorm:"type:text" json:"body"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

// ProjectApplication is an application to list a project on the platform.
type ProjectApplication struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string    `gorm:"size:64;not null;index" json:"user_id"`
	ProjectName string    `gorm:"size:256;not null" json:"project_name"`
	Details     string    `gorm:"type:text" json:"details"`
	Status      string    `gorm:"size:16;default:'pending'" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ProjectApplication) TableName() string {
	return "project_applications"
}
