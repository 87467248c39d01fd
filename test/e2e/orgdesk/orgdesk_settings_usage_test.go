package orgdesk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orgdeskhq/orgdesk/pkg/orgsdk"
)

func TestSettingsUpdate(t *testing.T) {
	baseURL := setupContainer(t)
	admin, res := bootstrapOrg(t, baseURL)

	org, err := admin.UpdateSettings(t.Context(), orgsdk.UpdateSettingsRequest{
		Name:              "Acme Renamed",
		MaxUsers:          20,
		MaxChatSessions:   200,
		MonthlyTokenLimit: 2_000_000,
		PlanType:          "enterprise",
	})
	require.NoError(t, err)

	require.Equal(t, "Acme Renamed", org.Name)
	require.EqualValues(t, 20, org.MaxUsers)
	require.Equal(t, "enterprise", org.PlanType)

	// Display-only fields are untouched by the update.
	require.Equal(t, res.Organization.Domain, org.Domain)
	require.Equal(t, res.Organization.SubscriptionStatus, org.SubscriptionStatus)

	// The update persisted.
	again, err := admin.GetOrganization(t.Context())
	require.NoError(t, err)
	require.Equal(t, "Acme Renamed", again.Name)
}

func TestUsageSnapshot(t *testing.T) {
	baseURL := setupContainer(t)
	admin, res := bootstrapOrg(t, baseURL)

	// One active member (the admin) against max_users 10.
	usage, err := admin.Usage(t.Context())
	require.NoError(t, err)

	require.EqualValues(t, 1, usage.Users.Used)
	require.EqualValues(t, res.Organization.MaxUsers, usage.Users.Limit)
	require.InDelta(t, 10, usage.Users.Percent, 0.0001)
	require.Equal(t, "ok", usage.Users.Band)

	// Chat and token usage are placeholder zeros against real limits.
	require.EqualValues(t, 0, usage.ChatSessions.Used)
	require.EqualValues(t, res.Organization.MaxChatSessions, usage.ChatSessions.Limit)
	require.EqualValues(t, 0, usage.Tokens.Used)
	require.Equal(t, "ok", usage.Tokens.Band)

	// Tighten the limit so the same count lands in critical.
	_, err = admin.UpdateSettings(t.Context(), orgsdk.UpdateSettingsRequest{
		Name:              res.Organization.Name,
		MaxUsers:          1,
		MaxChatSessions:   res.Organization.MaxChatSessions,
		MonthlyTokenLimit: res.Organization.MonthlyTokenLimit,
		PlanType:          res.Organization.PlanType,
	})
	require.NoError(t, err)

	usage, err = admin.Usage(t.Context())
	require.NoError(t, err)
	require.InDelta(t, 100, usage.Users.Percent, 0.0001)
	require.Equal(t, "critical", usage.Users.Band)
}
