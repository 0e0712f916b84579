// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. The avatar URL is derived from the
// email at registration time and denormalized onto posts and comments.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicUser is the trimmed projection of a user joined onto profile
// responses, which are publicly readable. Email and timestamps stay off
// the wire; the full record is only returned to the account owner.
type PublicUser struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// TableName maps the projection onto the users table.
func (PublicUser) TableName() string {
	return "users"
}
