package commentsapi

import (
	"errors"
	"net/http"

	"gamehub-app/database"
	"gamehub-app/internal/domain/community"
	"gamehub-app/internal/domain/games"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /comments
func CreateComment(c *gin.Context) {
	var input struct {
		GameID  uint   `json:"game_id" binding:"required"`
		Content string `json:"content" binding:"required,min=3,max=1000"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content must be between 3 and 1000 characters"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var game games.Game
	if err := database.DB.First(&game, input.GameID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown game"})
		return
	}

	comment := community.Comment{
		UserID:     userID,
		GameID:     game.ID,
		Content:    input.Content,
		IsApproved: false,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thanks for sharing! Your comment will be visible after moderation.",
		"id":      comment.ID,
	})
}

// DELETE /comments/:id, owner or admin only.
func DeleteComment(c *gin.Context) {
	userID := c.GetUint("user_id")
	role := c.GetString("role")

	var comment community.Comment
	if err := database.DB.First(&comment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if comment.UserID != userID && role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := database.DB.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

// POST /admin/comments/:id/approve
func ApproveComment(c *gin.Context) {
	var comment community.Comment
	if err := database.DB.First(&comment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if !comment.IsApproved {
		if err := database.DB.Model(&comment).Update("is_approved", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve comment"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment approved"})
}

// POST /comments/:id/react. Posting the same reaction twice removes it.
func ReactToComment(c *gin.Context) {
	var input struct {
		Reaction string `json:"reaction" binding:"required,oneof=like dislike"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reaction must be like or dislike"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var comment community.Comment
	if err := database.DB.First(&comment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	value := community.ReactionLike
	if input.Reaction == "dislike" {
		value = community.ReactionDislike
	}

	var existing community.CommentReaction
	err := database.DB.Where("comment_id = ? AND user_id = ?", comment.ID, userID).First(&existing).Error
	switch {
	case err == nil && existing.Reaction == value:
		err = database.DB.Delete(&existing).Error
	case err == nil:
		existing.Reaction = value
		err = database.DB.Save(&existing).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		err = database.DB.Create(&community.CommentReaction{
			CommentID: comment.ID,
			UserID:    userID,
			Reaction:  value,
		}).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reaction"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reaction recorded"})
}

// PendingComments lists unapproved comments for the moderation queue.
func PendingComments(db *gorm.DB) ([]community.Comment, error) {
	var rows []community.Comment
	err := db.Where("is_approved = ?", false).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "name", "email")
		}).
		Preload("Game", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "slug")
		}).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
