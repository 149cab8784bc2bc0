package adminapi

import (
	"net/http"
	"time"

	"gamehub-app/database"
	"gamehub-app/internal/api/comments"
	"gamehub-app/internal/api/tips"
	"gamehub-app/internal/domain/billing"
	"gamehub-app/internal/domain/community"
	"gamehub-app/internal/domain/games"
	"gamehub-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID                uint       `json:"id"`
	Name              string     `json:"name"`
	Username          string     `json:"username"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	AuthProvider      string     `json:"auth_provider"`
	IsVerified        bool       `json:"is_verified"`
	PlanName          *string    `json:"plan_name,omitempty"`
	StripeCustomerID  *string    `json:"stripe_customer_id,omitempty"`
	StripeSubID       *string    `json:"stripe_subscription_id,omitempty"`
	SubscriptionStart *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd   *time.Time `json:"subscription_end,omitempty"`
}

type AdminPayment struct {
	ID         uint    `json:"id"`
	Email      string  `json:"email"`
	PlanName   *string `json:"plan_name,omitempty"`
	AmountEUR  float64 `json:"amount_eur"`
	Status     string  `json:"status"`
	InvoiceID  *string `json:"invoice_id,omitempty"`
	ReceiptURL *string `json:"receipt_url,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type AdminStats struct {
	TotalUsers      int            `json:"total_users"`
	TotalGames      int            `json:"total_games"`
	TotalComments   int            `json:"total_comments"`
	TotalTips       int            `json:"total_tips"`
	PendingComments int            `json:"pending_comments"`
	PendingTips     int            `json:"pending_tips"`
	TotalRevenue    float64        `json:"total_revenue"`
	RecentRevenue   float64        `json:"recent_revenue"`
	UsersPerPlan    map[string]int `json:"users_per_plan"`
}

// AdminDashboard returns the landing data for the back office: the latest
// games added to the catalog and the most recent published announcement.
func AdminDashboard(c *gin.Context) {
	var recentGames []games.Game
	if err := database.DB.Order("created_at DESC").Limit(6).Find(&recentGames).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recent games"})
		return
	}

	var latest community.Announcement
	err := database.DB.
		Where("published_at IS NOT NULL").
		Order("published_at DESC").
		First(&latest).Error

	resp := gin.H{"recent_games": recentGames}
	if err == nil {
		resp["latest_announcement"] = latest
	}
	c.JSON(http.StatusOK, resp)
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	err := database.DB.Preload("Plan").Find(&all).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var adminUsers []AdminUser
	for _, u := range all {
		var planName *string
		if u.Plan != nil {
			planName = &u.Plan.Name
		}

		adminUsers = append(adminUsers, AdminUser{
			ID:                u.ID,
			Name:              u.Name,
			Username:          u.Username,
			Email:             u.Email,
			Role:              u.Role,
			AuthProvider:      u.AuthProvider,
			IsVerified:        u.IsVerified,
			PlanName:          planName,
			StripeCustomerID:  u.StripeCustomerID,
			StripeSubID:       u.SubscriptionId,
			SubscriptionStart: u.SubscriptionStart,
			SubscriptionEnd:   u.SubscriptionEnd,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

func GetUserDetails(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.Preload("Plan").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.Preload("Plan").Where("user_id = ?", userID).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     user,
		"payments": payments,
	})
}

// PATCH /admin/users/:id/role
func SetUserRole(c *gin.Context) {
	var input struct {
		Role string `json:"role" binding:"required,oneof=user admin"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be user or admin"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := database.DB.Model(&user).Update("role", input.Role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	err := database.DB.Preload("User").Preload("Plan").Order("created_at DESC").Find(&payments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	var result []AdminPayment
	for _, p := range payments {
		var planName *string
		if p.Plan != nil {
			planName = &p.Plan.Name
		}
		result = append(result, AdminPayment{
			ID:         p.ID,
			Email:      p.User.Email,
			PlanName:   planName,
			AmountEUR:  p.AmountEUR,
			Status:     p.Status,
			InvoiceID:  p.InvoiceID,
			ReceiptURL: p.ReceiptURL,
			CreatedAt:  p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, result)
}

func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	var totalUsers, totalGames, totalComments, totalTips int64
	var pendingComments, pendingTips int64
	var totalRevenue float64
	var recentRevenue float64

	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&games.Game{}).Count(&totalGames)
	database.DB.Model(&community.Comment{}).Count(&totalComments)
	database.DB.Model(&community.Tip{}).Count(&totalTips)
	database.DB.Model(&community.Comment{}).Where("is_approved = ?", false).Count(&pendingComments)
	database.DB.Model(&community.Tip{}).Where("is_approved = ?", false).Count(&pendingTips)
	database.DB.Model(&billing.Payment{}).Where("status = ?", "paid").Select("COALESCE(SUM(amount_eur), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&billing.Payment{}).
		Where("status = ? AND created_at >= ?", "paid", thirtyDaysAgo).
		Select("COALESCE(SUM(amount_eur), 0)").Scan(&recentRevenue)

	stats.TotalUsers = int(totalUsers)
	stats.TotalGames = int(totalGames)
	stats.TotalComments = int(totalComments)
	stats.TotalTips = int(totalTips)
	stats.PendingComments = int(pendingComments)
	stats.PendingTips = int(pendingTips)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue

	type PlanCount struct {
		Name  *string
		Count int
	}
	var counts []PlanCount

	database.DB.
		Table("users").
		Select("plans.name, COUNT(users.id) as count").
		Joins("LEFT JOIN plans ON users.plan_id = plans.id").
		Group("plans.name").
		Scan(&counts)

	stats.UsersPerPlan = map[string]int{}
	for _, pc := range counts {
		name := "No Plan"
		if pc.Name != nil {
			name = *pc.Name
		}
		stats.UsersPerPlan[name] = pc.Count
	}

	c.JSON(http.StatusOK, stats)
}

// GET /admin/moderation/queue
func ModerationQueue(c *gin.Context) {
	pendingComments, err := commentsapi.PendingComments(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load moderation queue"})
		return
	}
	pendingTips, err := tipsapi.PendingTips(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load moderation queue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": pendingComments,
		"tips":     pendingTips,
	})
}
