package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orgdeskhq/orgdesk/internal/admin/domain"
)

func TestGetOrganization(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	org := seedOrg(t, s)

	svc := &OrganizationService{Store: s}
	got, err := svc.Get(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, org.Name, got.Name)
	require.Equal(t, org.Domain, got.Domain)

	_, err = svc.Get(ctx, "no-such-org")
	require.ErrorIs(t, err, ErrOrganizationNotFound)
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	org := seedOrg(t, s)

	svc := &OrganizationService{Store: s}
	got, err := svc.UpdateSettings(ctx, org.ID, domain.OrganizationSettings{
		Name:              "Acme Renamed",
		MaxUsers:          25,
		MaxChatSessions:   100,
		MonthlyTokenLimit: 5_000_000,
		PlanType:          "enterprise",
	})
	require.NoError(t, err)

	require.Equal(t, "Acme Renamed", got.Name)
	require.EqualValues(t, 25, got.MaxUsers)
	require.EqualValues(t, 100, got.MaxChatSessions)
	require.EqualValues(t, 5_000_000, got.MonthlyTokenLimit)
	require.Equal(t, "enterprise", got.PlanType)

	// Display-only fields survive untouched.
	require.Equal(t, org.Domain, got.Domain)
	require.Equal(t, org.SubscriptionStatus, got.SubscriptionStatus)
}

func TestUpdateSettingsValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	org := seedOrg(t, s)

	svc := &OrganizationService{Store: s}

	_, err := svc.UpdateSettings(ctx, org.ID, domain.OrganizationSettings{Name: "   "})
	require.ErrorIs(t, err, ErrInvalidSettings)

	_, err = svc.UpdateSettings(ctx, org.ID, domain.OrganizationSettings{Name: "Acme", MaxUsers: -1})
	require.ErrorIs(t, err, ErrInvalidSettings)

	_, err = svc.UpdateSettings(ctx, "no-such-org", domain.OrganizationSettings{Name: "Acme"})
	require.ErrorIs(t, err, ErrOrganizationNotFound)
}
