package announcementsapi

import (
	"net/http"
	"time"

	"gamehub-app/database"
	"gamehub-app/internal/domain/community"

	"github.com/gin-gonic/gin"
)

type AnnouncementDTO struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// GET /announcements returns published announcements, newest first.
func ListAnnouncements(c *gin.Context) {
	var rows []community.Announcement
	err := database.DB.
		Preload("User").
		Where("published_at IS NOT NULL AND published_at <= ?", time.Now()).
		Order("published_at DESC").
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load announcements"})
		return
	}

	out := make([]AnnouncementDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, AnnouncementDTO{
			ID:          row.ID,
			Title:       row.Title,
			Content:     row.Content,
			Author:      row.User.Username,
			PublishedAt: row.PublishedAt,
			CreatedAt:   row.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// POST /admin/announcements
func CreateAnnouncement(c *gin.Context) {
	var input struct {
		Title   string `json:"title" binding:"required,min=3,max=200"`
		Content string `json:"content" binding:"required,min=3"`
		Publish bool   `json:"publish"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A title and content are required"})
		return
	}

	userID := c.GetUint("user_id")
	announcement := community.Announcement{
		UserID:  userID,
		Title:   input.Title,
		Content: input.Content,
	}
	if input.Publish {
		now := time.Now()
		announcement.PublishedAt = &now
	}

	if err := database.DB.Create(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create announcement"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Announcement created", "id": announcement.ID})
}

// PUT /admin/announcements/:id
func UpdateAnnouncement(c *gin.Context) {
	var input struct {
		Title   string `json:"title" binding:"required,min=3,max=200"`
		Content string `json:"content" binding:"required,min=3"`
		Publish *bool  `json:"publish"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A title and content are required"})
		return
	}

	var announcement community.Announcement
	if err := database.DB.First(&announcement, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	}

	announcement.Title = input.Title
	announcement.Content = input.Content
	if input.Publish != nil {
		if *input.Publish {
			if announcement.PublishedAt == nil {
				now := time.Now()
				announcement.PublishedAt = &now
			}
		} else {
			announcement.PublishedAt = nil
		}
	}

	if err := database.DB.Save(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update announcement"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Announcement updated"})
}

// DELETE /admin/announcements/:id
func DeleteAnnouncement(c *gin.Context) {
	result := database.DB.Delete(&community.Announcement{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete announcement"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted"})
}
