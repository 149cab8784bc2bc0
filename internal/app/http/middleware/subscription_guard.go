package middleware

import (
	"net/http"
	"time"

	"gamehub-app/database"
	"gamehub-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequireActiveSubscription gates premium-only features such as profile
// customization.
func RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var user users.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Subscription not found or expired",
			})
			return
		}

		if !user.IsSubscribed(time.Now()) {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "An active subscription is required for this feature",
			})
			return
		}

		c.Next()
	}
}
