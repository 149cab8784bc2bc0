package users

import (
	"testing"
	"time"

	domainusers "gamehub-app/internal/domain/users"
)

func TestBuildSubscriptionDTO(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	strPtr := func(s string) *string { return &s }
	timePtr := func(tm time.Time) *time.Time { return &tm }

	cases := []struct {
		name       string
		user       domainusers.User
		wantStatus string
		wantActive bool
	}{
		{
			name:       "never subscribed",
			user:       domainusers.User{},
			wantStatus: "none",
			wantActive: false,
		},
		{
			name: "running subscription",
			user: domainusers.User{
				StripeSubscriptionStatus: strPtr("active"),
				SubscriptionEnd:          timePtr(now.Add(30 * 24 * time.Hour)),
			},
			wantStatus: "active",
			wantActive: true,
		},
		{
			name: "lapsed subscription",
			user: domainusers.User{
				StripeSubscriptionStatus: strPtr("canceled"),
				SubscriptionEnd:          timePtr(now.Add(-24 * time.Hour)),
			},
			wantStatus: "canceled",
			wantActive: false,
		},
		{
			name: "past due folds unpaid",
			user: domainusers.User{
				StripeSubscriptionStatus: strPtr("unpaid"),
				SubscriptionEnd:          timePtr(now.Add(24 * time.Hour)),
			},
			wantStatus: "past_due",
			wantActive: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dto := BuildSubscriptionDTO(now, tc.user)
			if dto.Status != tc.wantStatus {
				t.Errorf("status = %q, want %q", dto.Status, tc.wantStatus)
			}
			if dto.Active != tc.wantActive {
				t.Errorf("active = %v, want %v", dto.Active, tc.wantActive)
			}
		})
	}
}
