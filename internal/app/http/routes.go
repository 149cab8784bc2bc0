package routes

import (
	adminapi "gamehub-app/internal/api/admin"
	announcementsapi "gamehub-app/internal/api/announcements"
	authapi "gamehub-app/internal/api/auth"
	billingapi "gamehub-app/internal/api/billing"
	commentsapi "gamehub-app/internal/api/comments"
	gamesapi "gamehub-app/internal/api/games"
	plansapi "gamehub-app/internal/api/plans"
	privacyapi "gamehub-app/internal/api/privacy"
	stripewebhooks "gamehub-app/internal/api/stripewebhook"
	tipsapi "gamehub-app/internal/api/tips"
	"gamehub-app/internal/api/users"
	"gamehub-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Stripe signs the raw payload, so the webhook stays outside the
	// sanitizer.
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plansapi.ListPlans)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Game reads stay public but pick up the caller's identity when a
	// token is sent, so their own rating and reactions come back.
	public.GET("/games", middleware.OptionalAuth(), gamesapi.ListGames)
	public.GET("/games/:slug", middleware.OptionalAuth(), gamesapi.GetGameBySlug)
	public.GET("/announcements", announcementsapi.ListAnnouncements)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeAndCleanInputMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/payments", billingapi.GetPaymentHistory)
	auth.POST("/create-checkout-session", billingapi.CreateCheckoutSession)
	auth.POST("/billing-portal", billingapi.CreateBillingPortal)
	auth.POST("/cancel-subscription", billingapi.CancelSubscription)

	auth.POST("/games/:slug/rating", gamesapi.RateGame)
	auth.DELETE("/games/:slug/rating", gamesapi.DeleteRating)

	auth.POST("/comments", commentsapi.CreateComment)
	auth.DELETE("/comments/:id", commentsapi.DeleteComment)
	auth.POST("/comments/:id/react", commentsapi.ReactToComment)

	auth.POST("/tips", tipsapi.CreateTip)
	auth.DELETE("/tips/:id", tipsapi.DeleteTip)
	auth.POST("/tips/:id/react", tipsapi.ReactToTip)

	auth.POST("/privacy/erasure-requests", privacyapi.CreateErasureRequest)

	// Subscribed users
	subscribed := auth.Group("/")
	subscribed.Use(middleware.RequireActiveSubscription())
	subscribed.PUT("/me/appearance", users.UpdateAppearance)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/stats", adminapi.GetAdminStats)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.PATCH("/users/:id/role", adminapi.SetUserRole)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.POST("/sync-plans", plansapi.SyncPlansFromStripe)

	admin.GET("/moderation/queue", adminapi.ModerationQueue)
	admin.POST("/comments/:id/approve", commentsapi.ApproveComment)
	admin.POST("/tips/:id/approve", tipsapi.ApproveTip)

	admin.POST("/announcements", announcementsapi.CreateAnnouncement)
	admin.PUT("/announcements/:id", announcementsapi.UpdateAnnouncement)
	admin.DELETE("/announcements/:id", announcementsapi.DeleteAnnouncement)

	admin.GET("/privacy/requests", privacyapi.ListErasureRequests)
	admin.PATCH("/privacy/requests/:id", privacyapi.UpdateErasureRequest)
	admin.POST("/privacy/requests/:id/delete-account", privacyapi.DeleteAccount)
	admin.POST("/privacy/requests/:id/anonymize", privacyapi.AnonymizePersonalData)
}
