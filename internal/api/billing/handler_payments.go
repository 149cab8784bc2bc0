package billingapi

import (
	"log"
	"net/http"
	"os"

	"gamehub-app/database"
	"gamehub-app/internal/domain/billing"
	"gamehub-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/subscription"
)

func GetPaymentHistory(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// CancelSubscription cancels at the end of the current billing period, so
// the user keeps premium access until the paid-for date.
func CancelSubscription(c *gin.Context) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}
	if user.SubscriptionId == nil || *user.SubscriptionId == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "No active subscription to cancel"})
		return
	}

	_, err := subscription.Update(*user.SubscriptionId, &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	})
	if err != nil {
		log.Printf("failed to schedule cancellation of subscription %s: %v", *user.SubscriptionId, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not cancel subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your subscription will end at the current period's close."})
}
