package users

import "time"

type UserDTO struct {
	ID                 uint    `json:"id"`
	Email              string  `json:"email"`
	Name               string  `json:"name"`
	Username           string  `json:"username"`
	Role               string  `json:"role"`
	IsVerified         bool    `json:"is_verified"`
	DisplayNameColor   *string `json:"display_name_color,omitempty"`
	DisplayAlias       *string `json:"display_alias,omitempty"`
	ProfileBorderStyle *string `json:"profile_border_style,omitempty"`
}

type PlanDTO struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	PriceEUR float64 `json:"price_eur"`
	Interval string  `json:"interval"`
}

type SubscriptionDTO struct {
	Status    string     `json:"status"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	Active    bool       `json:"active"`
}

type BillingDTO struct {
	Plan         *PlanDTO        `json:"plan,omitempty"`
	Subscription SubscriptionDTO `json:"subscription"`
}

type MeResponse struct {
	User    UserDTO    `json:"user"`
	Billing BillingDTO `json:"billing"`
}
