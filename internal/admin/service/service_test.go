package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/orgdeskhq/orgdesk/internal/admin/domain"
	adminmail "github.com/orgdeskhq/orgdesk/internal/admin/mail"
	"github.com/orgdeskhq/orgdesk/internal/admin/store/drivers/sqlite"
	"github.com/orgdeskhq/orgdesk/pkg/idx"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedOrg(t *testing.T, s *sqlite.Store) domain.Organization {
	t.Helper()

	org := domain.Organization{
		ID:                 idx.New().String(),
		Name:               "Acme Corp",
		Domain:             "acme.example",
		PlanType:           "pro",
		SubscriptionStatus: "active",
		MaxUsers:           10,
		MaxChatSessions:    50,
		MonthlyTokenLimit:  1_000_000,
	}
	require.NoError(t, s.Organizations().CreateOrganization(context.Background(), org))
	return org
}

func seedMember(t *testing.T, s *sqlite.Store, orgID string, role domain.MemberRole, status domain.MemberStatus) domain.Member {
	t.Helper()

	m := domain.Member{
		ID:       idx.New().String(),
		Email:    idx.New().String() + "@acme.example",
		FullName: "Test Member",
		Role:     role,
		Status:   status,
		OrgID:    &orgID,
	}
	require.NoError(t, s.Members().CreateMember(context.Background(), m))
	return m
}

func seedInvitation(t *testing.T, s *sqlite.Store, orgID, invitedBy string, expiresAt time.Time) domain.Invitation {
	t.Helper()

	inv := domain.Invitation{
		ID:        idx.New().String(),
		Email:     "invitee@acme.example",
		OrgID:     orgID,
		InvitedBy: invitedBy,
		Status:    domain.InvitationPending,
		ExpiresAt: expiresAt,
	}
	require.NoError(t, s.Invitations().CreateInvitation(context.Background(), inv))
	return inv
}

// recordingMailer captures outgoing invites for assertion.
type recordingMailer struct {
	sent []adminmail.Invite
	err  error
}

func (m *recordingMailer) SendInvite(_ context.Context, inv adminmail.Invite) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, inv)
	return nil
}
