package domain

import "time"

// Organization is the tenant boundary. It owns members, invitations and the
// quota settings surfaced on the admin dashboard.
type Organization struct {
	ID                 string
	Name               string
	Domain             string
	PlanType           string
	SubscriptionStatus string
	MaxUsers           int64
	MaxChatSessions    int64
	MonthlyTokenLimit  int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// OrganizationSettings carries the editable subset of an organization.
// Domain and subscription status are display-only: a settings update can
// never touch them.
type OrganizationSettings struct {
	Name              string
	MaxUsers          int64
	MaxChatSessions   int64
	MonthlyTokenLimit int64
	PlanType          string
}
