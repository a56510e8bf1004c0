package model

import (
	"time"
)

// Like marks a post as liked by a user.
type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:64;not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID    string    `gorm:"size:64;not null;uniqueIndex:idx_likes_user_post" json:"post_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

// Reaction is an emoji reaction on a post.
type Reaction struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user_id"`
	PostID    string    `gorm:"size:64;not null;index" json:"post_id"`
	Emoji     string    `gorm:"size:16;not null" json:"emoji"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Reaction) TableName() string {
	return "reactions"
}

// Share records a user re-sharing a post.
type Share struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user_id"`
	PostID    string    `gorm:"size:64;not null;index" json:"post_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Share) TableName() string {
	return "shares"
}

// Bookmark is a privately saved post.
type Bookmark struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user_id"`
	PostID    string    `gorm:"size:64;not null;index" json:"post_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

// Follow is a directed follower edge.
type Follow struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID  string    `gorm:"size:64;not null;uniqueIndex:idx_follows_edge" json:"follower_id"`
	FollowingID string    `gorm:"size:64;not null;uniqueIndex:idx_follows_edge" json:"following_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}

// Friendship is a mutual relationship with an acceptance state.
type Friendship struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user_id"`
	FriendID  string    `gorm:"size:64;not null;index" json:"friend_id"`
	Status    string    `gorm:"size:16;default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Friendship) TableName() string {
	return "friendships"
}

// Block is a directed block edge.
type Block struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BlockerID string    `gorm:"size:64;not null;index" json:"blocker_id"`
	BlockedID string    `gorm:"size:64;not null;index" json:"blocked_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Block) TableName() string {
	return "blocks"
}
