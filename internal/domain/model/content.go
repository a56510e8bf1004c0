package model

import (
	"time"
)

// Post is community content. On account deletion the author reference is
// repointed to the sentinel user; the body and media survive.
type Post struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	AuthorID  string    `gorm:"size:64;not null;index" json:"author_id"`
	Content   string    `gorm:"type:text" json:"content"`
	MediaURL  *string   `gorm:"size:512" json:"media_url,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// Comment is a reply on a post. Anonymized like posts.
type Comment struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	PostID    string    `gorm:"size:64;not null;index" json:"post_id"`
	AuthorID  string    `gorm:"size:64;not null;index" json:"author_id"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// PostEdit records a historical revision of a post. The editor reference is
// anonymized on account deletion.
type PostEdit struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID          string    `gorm:"size:64;not null;index" json:"post_id"`
	EditedBy        string    `gorm:"size:64;not null;index" json:"edited_by"`
	PreviousContent string    `gorm:"type:text" json:"previous_content"`
	EditedAt        time.Time `gorm:"autoCreateTime" json:"edited_at"`
}

func (PostEdit) TableName() string {
	return "post_edits"
}
