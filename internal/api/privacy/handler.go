package privacyapi

import (
	"net/http"

	"gamehub-app/database"
	"gamehub-app/internal/domain/privacy"

	"github.com/gin-gonic/gin"
)

// POST /privacy/erasure-requests
func CreateErasureRequest(c *gin.Context) {
	var input struct {
		RequestType string  `json:"request_type" binding:"required,oneof=account_deletion data_deletion"`
		Details     *string `json:"details" binding:"omitempty,max=2000"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request_type must be account_deletion or data_deletion"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	request := privacy.DataErasureRequest{
		UserID:      &userID,
		RequestType: input.RequestType,
		Details:     input.Details,
		Status:      privacy.StatusPending,
	}
	if err := database.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record the request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your request has been recorded. Our team will get back to you shortly.",
		"id":      request.ID,
	})
}
