package community

import (
	"gamehub-app/internal/domain/users"
	"time"
)

// Announcement is an admin-authored message surfaced on the dashboard.
type Announcement struct {
	ID          uint       `gorm:"primaryKey"`
	UserID      uint       `gorm:"not null;index"`
	User        users.User `gorm:"constraint:OnDelete:CASCADE"`
	Title       string     `gorm:"not null"`
	Content     string     `gorm:"type:text;not null"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
