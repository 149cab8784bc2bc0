package billing

import (
	"gamehub-app/internal/domain/plans"
	"gamehub-app/internal/domain/users"
	"time"
)

type Payment struct {
	ID                   uint `gorm:"primaryKey"`
	UserID               uint
	User                 users.User `gorm:"constraint:OnDelete:CASCADE"`
	PlanID               *uint
	Plan                 *plans.Plan
	StripeSubscriptionID *string
	AmountEUR            float64
	Status               string
	InvoiceID            *string `gorm:"uniqueIndex"`
	ReceiptURL           *string
	CreatedAt            time.Time
}
