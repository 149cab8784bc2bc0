package users

import (
	"gamehub-app/internal/domain/plans"
	"time"
)

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"not null"`
	Username     string  `gorm:"not null;uniqueIndex:idx_users_username"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string
	IsVerified   bool

	// Optional profile data, scrubbed by the GDPR anonymization flow.
	Phone      *string
	Address    *string
	City       *string
	PostalCode *string `gorm:"column:cp"`
	Country    *string
	Age        int

	// Premium profile customization (subscribers only).
	DisplayNameColor   *string `gorm:"type:varchar(20)"`
	DisplayAlias       *string `gorm:"type:varchar(50)"`
	ProfileBorderStyle *string `gorm:"type:varchar(30)"`

	PlanID *uint
	Plan   *plans.Plan

	SubscriptionStart        *time.Time
	SubscriptionEnd          *time.Time
	SubscriptionId           *string `gorm:"column:subscription_id;uniqueIndex:idx_users_subscription_id"`
	StripeCustomerID         *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`
	StripeSubscriptionStatus *string `gorm:"column:stripe_subscription_status"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSubscribed reports whether the user has a subscription running at t.
func (u *User) IsSubscribed(t time.Time) bool {
	return u.SubscriptionEnd != nil && t.Before(*u.SubscriptionEnd)
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
