package stripewebhooks

import (
	"errors"

	"gamehub-app/database"
	"gamehub-app/internal/domain/billing"
	"gamehub-app/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

// handleInvoicePaid records a payment row for each paid invoice, covering
// both the initial checkout charge and recurring renewals.
func handleInvoicePaid(invoice *stripe.Invoice) error {
	if invoice.ID == "" || invoice.Customer == nil || invoice.Customer.ID == "" {
		return nil
	}

	var user users.User
	if err := database.DB.Where("stripe_customer_id = ?", invoice.Customer.ID).First(&user).Error; err != nil {
		// customer unknown to us, acknowledge without recording
		return nil
	}

	// Stripe retries webhooks, so the same invoice can arrive twice.
	var existing billing.Payment
	err := database.DB.Where("invoice_id = ?", invoice.ID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	payment := billing.Payment{
		UserID:    user.ID,
		PlanID:    user.PlanID,
		AmountEUR: float64(invoice.AmountPaid) / 100.0,
		Status:    "paid",
		InvoiceID: &invoice.ID,
	}
	if invoice.Subscription != nil && invoice.Subscription.ID != "" {
		payment.StripeSubscriptionID = &invoice.Subscription.ID
	}
	if invoice.HostedInvoiceURL != "" {
		payment.ReceiptURL = &invoice.HostedInvoiceURL
	}

	return database.DB.Create(&payment).Error
}
