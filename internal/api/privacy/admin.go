package privacyapi

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"gamehub-app/database"
	"gamehub-app/internal/domain/privacy"
	"gamehub-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	stripego "github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/subscription"
	"gorm.io/gorm"
)

type ErasureRequestDTO struct {
	ID          uint       `json:"id"`
	RequestType string     `json:"request_type"`
	Details     *string    `json:"details"`
	Status      string     `json:"status"`
	AdminNotes  *string    `json:"admin_notes"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	User        *struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Username string `json:"username"`
		Email    string `json:"email"`
	} `json:"user"`
}

// GET /admin/privacy/requests
func ListErasureRequests(c *gin.Context) {
	var rows []privacy.DataErasureRequest
	if err := database.DB.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "username", "email")
		}).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load requests"})
		return
	}

	out := make([]ErasureRequestDTO, 0, len(rows))
	for _, row := range rows {
		dto := ErasureRequestDTO{
			ID:          row.ID,
			RequestType: row.RequestType,
			Details:     row.Details,
			Status:      row.Status,
			AdminNotes:  row.AdminNotes,
			CreatedAt:   row.CreatedAt,
			ResolvedAt:  row.ResolvedAt,
		}
		if row.User != nil {
			dto.User = &struct {
				ID       uint   `json:"id"`
				Name     string `json:"name"`
				Username string `json:"username"`
				Email    string `json:"email"`
			}{row.User.ID, row.User.Name, row.User.Username, row.User.Email}
		}
		out = append(out, dto)
	}
	c.JSON(http.StatusOK, out)
}

// PATCH /admin/privacy/requests/:id
func UpdateErasureRequest(c *gin.Context) {
	var input struct {
		Status     string  `json:"status" binding:"required,oneof=pending in_progress resolved"`
		AdminNotes *string `json:"admin_notes" binding:"omitempty,max=2000"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be pending, in_progress or resolved"})
		return
	}

	var request privacy.DataErasureRequest
	if err := database.DB.First(&request, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	request.Status = input.Status
	request.AdminNotes = input.AdminNotes
	if input.Status == privacy.StatusResolved {
		if request.ResolvedAt == nil {
			now := time.Now()
			request.ResolvedAt = &now
		}
	} else {
		request.ResolvedAt = nil
	}

	if err := database.DB.Save(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request updated"})
}

// POST /admin/privacy/requests/:id/delete-account
//
// Resolves an account_deletion request: cancels the subscription
// (best-effort), then deletes the user; dependent rows go with the user via
// FK cascade, while the request itself keeps a nulled user reference.
func DeleteAccount(c *gin.Context) {
	var request privacy.DataErasureRequest
	if err := database.DB.Preload("User").First(&request, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	if request.RequestType != privacy.RequestTypeAccountDeletion {
		c.JSON(http.StatusConflict, gin.H{"error": "This action is not available for the selected request type"})
		return
	}
	if request.User == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "The account tied to this request has already been deleted"})
		return
	}

	user := *request.User
	cancelSubscription(&user)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&request).Updates(map[string]interface{}{
			"status":      privacy.StatusResolved,
			"resolved_at": now,
		}).Error; err != nil {
			return err
		}
		return tx.Delete(&users.User{}, user.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "The user account has been deleted and the request closed."})
}

// POST /admin/privacy/requests/:id/anonymize
//
// Resolves a data_deletion request: scrubs personal fields and credentials
// while keeping the account and its contributions.
func AnonymizePersonalData(c *gin.Context) {
	var request privacy.DataErasureRequest
	if err := database.DB.Preload("User").First(&request, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	if request.RequestType != privacy.RequestTypeDataDeletion {
		c.JSON(http.StatusConflict, gin.H{"error": "This action is not available for the selected request type"})
		return
	}
	if request.User == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "The account tied to this request no longer exists"})
		return
	}

	identifier := randomIdentifier()
	placeholder := randomIdentifier()

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":                 "Anonymized account",
			"username":             "anon-" + identifier,
			"email":                "anon+" + identifier + "@deleted.local",
			"phone":                nil,
			"address":              nil,
			"city":                 nil,
			"cp":                   nil,
			"country":              nil,
			"age":                  0,
			"display_name_color":   nil,
			"display_alias":        nil,
			"profile_border_style": nil,
			"password":             placeholder,
			"google_sub":           nil,
			"is_verified":          false,
		}
		if err := tx.Model(&users.User{}).Where("id = ?", request.User.ID).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", request.User.ID).Delete(&users.VerificationToken{}).Error; err != nil {
			return err
		}
		now := time.Now()
		return tx.Model(&request).Updates(map[string]interface{}{
			"status":      privacy.StatusResolved,
			"resolved_at": now,
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to anonymize account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Personal data has been anonymized and the request closed."})
}

// cancelSubscription cancels the Stripe subscription if one exists. Failures
// are logged only; a dead Stripe link must not block a GDPR deletion.
func cancelSubscription(user *users.User) {
	if user.SubscriptionId == nil || *user.SubscriptionId == "" {
		return
	}
	stripego.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripego.Key == "" {
		log.Printf("skipping subscription cancel for user %d: stripe key not configured", user.ID)
		return
	}
	if _, err := subscription.Cancel(*user.SubscriptionId, nil); err != nil {
		log.Printf("failed to cancel subscription %s during erasure of user %d: %v", *user.SubscriptionId, user.ID, err)
	}
}

func randomIdentifier() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
