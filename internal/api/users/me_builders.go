package users

import (
	"time"

	"gamehub-app/internal/domain/plans"
	"gamehub-app/internal/domain/users"
	infrastripe "gamehub-app/internal/infra/stripe"
)

func BuildPlanDTO(plan *plans.Plan) *PlanDTO {
	if plan == nil {
		return nil
	}
	return &PlanDTO{
		ID:       plan.ID,
		Name:     plan.Name,
		PriceEUR: plan.PriceEUR,
		Interval: plan.Interval,
	}
}

func BuildSubscriptionDTO(now time.Time, user users.User) SubscriptionDTO {
	return SubscriptionDTO{
		Status:    infrastripe.NormalizeStripeStatus(user.StripeSubscriptionStatus),
		StartedAt: user.SubscriptionStart,
		EndsAt:    user.SubscriptionEnd,
		Active:    user.IsSubscribed(now),
	}
}
