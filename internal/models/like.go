package models

import (
	"time"
)

// Like marks that a user liked a post. The composite unique index
// enforces at most one like per user per post.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"user_id"`
	CreatedAt time.Time `json:"-"`
}
