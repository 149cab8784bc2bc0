package tipsapi

import (
	"errors"
	"net/http"

	"gamehub-app/database"
	"gamehub-app/internal/domain/community"
	"gamehub-app/internal/domain/games"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /tips
func CreateTip(c *gin.Context) {
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

	tip := community.Tip{
		UserID:     userID,
		GameID:     game.ID,
		Content:    input.Content,
		IsApproved: false,
	}
	if err := database.DB.Create(&tip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tip"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thanks for the tip! It will be visible after moderation.",
		"id":      tip.ID,
	})
}

// DELETE /tips/:id, owner or admin only.
func DeleteTip(c *gin.Context) {
	userID := c.GetUint("user_id")
	role := c.GetString("role")

	var tip community.Tip
	if err := database.DB.First(&tip, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tip not found"})
		return
	}

	if tip.UserID != userID && role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := database.DB.Delete(&tip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tip"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tip deleted"})
}

// POST /admin/tips/:id/approve
func ApproveTip(c *gin.Context) {
	var tip community.Tip
	if err := database.DB.First(&tip, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tip not found"})
		return
	}

	if !tip.IsApproved {
		if err := database.DB.Model(&tip).Update("is_approved", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve tip"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tip approved"})
}

// POST /tips/:id/react. Posting the same reaction twice removes it.
func ReactToTip(c *gin.Context) {
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

	var tip community.Tip
	if err := database.DB.First(&tip, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tip not found"})
		return
	}

	value := community.ReactionLike
	if input.Reaction == "dislike" {
		value = community.ReactionDislike
	}

	var existing community.TipReaction
	err := database.DB.Where("tip_id = ? AND user_id = ?", tip.ID, userID).First(&existing).Error
	switch {
	case err == nil && existing.Reaction == value:
		err = database.DB.Delete(&existing).Error
	case err == nil:
		existing.Reaction = value
		err = database.DB.Save(&existing).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		err = database.DB.Create(&community.TipReaction{
			TipID:    tip.ID,
			UserID:   userID,
			Reaction: value,
		}).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reaction"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reaction recorded"})
}

// PendingTips lists unapproved tips for the moderation queue.
func PendingTips(db *gorm.DB) ([]community.Tip, error) {
	var rows []community.Tip
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
