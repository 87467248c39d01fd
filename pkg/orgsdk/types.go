package orgsdk

import "time"

// ErrorResponse is the error body every endpoint returns on failure. The
// error string is surfaced to callers verbatim.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Organization is the full organization snapshot returned by GET /v1/org.
type Organization struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Domain             string    `json:"domain,omitempty"`
	PlanType           string    `json:"plan_type"`
	SubscriptionStatus string    `json:"subscription_status"`
	MaxUsers           int64     `json:"max_users"`
	MaxChatSessions    int64     `json:"max_chat_sessions"`
	MonthlyTokenLimit  int64     `json:"monthly_token_limit"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UpdateSettingsRequest carries the five editable organization fields.
// Anything else on the organization is read-only through this API.
type UpdateSettingsRequest struct {
	Name              string `json:"name"`
	MaxUsers          int64  `json:"max_users"`
	MaxChatSessions   int64  `json:"max_chat_sessions"`
	MonthlyTokenLimit int64  `json:"monthly_token_limit"`
	PlanType          string `json:"plan_type"`
}

// Member is one organization member as returned by GET /v1/org/members.
type Member struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name,omitempty"`
	Role           string     `json:"role"`
	Status         string     `json:"status"`
	OrganizationID string     `json:"organization_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Invitation is one invitation as returned by GET /v1/org/invitations.
// The id doubles as the redemption token inside the invite link.
type Invitation struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	OrganizationID string    `json:"organization_id"`
	InvitedBy      string    `json:"invited_by"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SendInvitationRequest is the POST /v1/invitations body. OrganizationID
// and UserID must match the caller's token claims.
type SendInvitationRequest struct {
	Email          string `json:"email"`
	OrganizationID string `json:"organization_id"`
	UserID         string `json:"user_id"`
}

// InviteLinkResponse is the GET /v1/org/invitations/{id}/link body.
type InviteLinkResponse struct {
	InviteURL string `json:"invite_url"`
}

// RedeemInvitationRequest is the public POST /v1/invitations/redeem body.
type RedeemInvitationRequest struct {
	InvitationID string `json:"invitation_id"`
	FullName     string `json:"full_name,omitempty"`
}

// UsageMetric is one limit-tracked quantity from GET /v1/org/usage.
type UsageMetric struct {
	Used    int64   `json:"used"`
	Limit   int64   `json:"limit"`
	Percent float64 `json:"percent"`
	Band    string  `json:"band"`
}

// UsageResponse is the full usage panel for the caller's organization.
type UsageResponse struct {
	Users        UsageMetric `json:"users"`
	ChatSessions UsageMetric `json:"chat_sessions"`
	Tokens       UsageMetric `json:"tokens"`
}

// BootstrapRequest seeds the first organization and admin on a fresh
// deployment. Token must match the server's configured bootstrap token.
type BootstrapRequest struct {
	Token             string `json:"token"`
	OrgName           string `json:"org_name"`
	OrgDomain         string `json:"org_domain,omitempty"`
	PlanType          string `json:"plan_type,omitempty"`
	AdminEmail        string `json:"admin_email"`
	AdminFullName     string `json:"admin_full_name,omitempty"`
	MaxUsers          int64  `json:"max_users,omitempty"`
	MaxChatSessions   int64  `json:"max_chat_sessions,omitempty"`
	MonthlyTokenLimit int64  `json:"monthly_token_limit,omitempty"`
}

// BootstrapResponse reports what bootstrap created.
type BootstrapResponse struct {
	Organization Organization `json:"organization"`
	Admin        Member       `json:"admin"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}
