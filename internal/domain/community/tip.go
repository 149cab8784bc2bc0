package community

import (
	"gamehub-app/internal/domain/games"
	"gamehub-app/internal/domain/users"
	"time"
)

// Tip is a user-submitted gameplay tip, moderated like a comment.
type Tip struct {
	ID         uint       `gorm:"primaryKey"`
	UserID     uint       `gorm:"not null;index"`
	User       users.User `gorm:"constraint:OnDelete:CASCADE"`
	GameID     uint       `gorm:"not null;index"`
	Game       games.Game `gorm:"constraint:OnDelete:CASCADE"`
	Content    string     `gorm:"type:text;not null"`
	IsApproved bool       `gorm:"not null;default:false"`

	Reactions []TipReaction `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type TipReaction struct {
	ID        uint       `gorm:"primaryKey"`
	TipID     uint       `gorm:"not null;uniqueIndex:idx_tip_reactions_tip_user"`
	UserID    uint       `gorm:"not null;uniqueIndex:idx_tip_reactions_tip_user"`
	User      users.User `gorm:"constraint:OnDelete:CASCADE"`
	Reaction  int        `gorm:"not null"`
	CreatedAt time.Time
}
