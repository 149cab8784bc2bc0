package users

import (
	"net/http"
	"time"

	"gamehub-app/database"
	"gamehub-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.
		Preload("Plan").
		First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	now := time.Now()
	resp := MeResponse{
		User: UserDTO{
			ID:                 user.ID,
			Email:              user.Email,
			Name:               user.Name,
			Username:           user.Username,
			Role:               user.Role,
			IsVerified:         user.IsVerified,
			DisplayNameColor:   user.DisplayNameColor,
			DisplayAlias:       user.DisplayAlias,
			ProfileBorderStyle: user.ProfileBorderStyle,
		},
		Billing: BillingDTO{
			Plan:         BuildPlanDTO(user.Plan),
			Subscription: BuildSubscriptionDTO(now, user),
		},
	}

	c.JSON(http.StatusOK, resp)
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	var verif users.VerificationToken
	if err := database.DB.Where("token = ?", token).First(&verif).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", verif.UserID).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	database.DB.Delete(&verif)

	c.JSON(http.StatusOK, gin.H{"message": "Email verified. You can now sign in."})
}

// PUT /me/appearance. Premium profile customization, subscribers only
// (enforced by the subscription middleware on the route).
func UpdateAppearance(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		DisplayNameColor   *string `json:"display_name_color" binding:"omitempty,max=20"`
		DisplayAlias       *string `json:"display_alias" binding:"omitempty,max=50"`
		ProfileBorderStyle *string `json:"profile_border_style" binding:"omitempty,max=30"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updates := map[string]interface{}{
		"display_name_color":   input.DisplayNameColor,
		"display_alias":        input.DisplayAlias,
		"profile_border_style": input.ProfileBorderStyle,
	}
	if err := database.DB.Model(&users.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
