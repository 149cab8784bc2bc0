package community

import (
	"gamehub-app/internal/domain/games"
	"gamehub-app/internal/domain/users"
	"time"

	"gorm.io/gorm"
)

const (
	ReactionLike    = 1
	ReactionDislike = -1
)

// Comment is a user-submitted comment on a game. New comments are held
// unapproved until a moderator validates them.
type Comment struct {
	ID         uint       `gorm:"primaryKey"`
	UserID     uint       `gorm:"not null;index"`
	User       users.User `gorm:"constraint:OnDelete:CASCADE"`
	GameID     uint       `gorm:"not null;index"`
	Game       games.Game `gorm:"constraint:OnDelete:CASCADE"`
	Content    string     `gorm:"type:text;not null"`
	IsApproved bool       `gorm:"not null;default:false"`

	Reactions []CommentReaction `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CommentReaction struct {
	ID        uint       `gorm:"primaryKey"`
	CommentID uint       `gorm:"not null;uniqueIndex:idx_comment_reactions_comment_user"`
	UserID    uint       `gorm:"not null;uniqueIndex:idx_comment_reactions_comment_user"`
	User      users.User `gorm:"constraint:OnDelete:CASCADE"`
	Reaction  int        `gorm:"not null"`
	CreatedAt time.Time
}

// Approved scopes a query to moderator-validated rows.
func Approved(db *gorm.DB) *gorm.DB {
	return db.Where("is_approved = ?", true)
}
