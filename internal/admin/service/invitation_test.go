package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/orgdeskhq/orgdesk/internal/admin/domain"
	"github.com/orgdeskhq/orgdesk/internal/admin/store/drivers/sqlite"
)

type invitationFixture struct {
	svc    *InvitationService
	store  *sqlite.Store
	mailer *recordingMailer
	org    domain.Organization
	admin  domain.Member
}

func newInvitationFixture(t *testing.T) invitationFixture {
	t.Helper()

	s := newTestStore(t)
	org := seedOrg(t, s)
	admin := seedMember(t, s, org.ID, domain.RoleAdmin, domain.MemberActive)

	mailer := &recordingMailer{}
	svc := &InvitationService{
		Store:        s,
		Mailer:       mailer,
		PublicOrigin: "https://admin.acme.example",
		InviteTTL:    7 * 24 * time.Hour,
	}
	return invitationFixture{svc: svc, store: s, mailer: mailer, org: org, admin: admin}
}

func TestSendInvitation(t *testing.T) {
	ctx := context.Background()
	f := newInvitationFixture(t)

	inv, err := f.svc.Send(ctx, f.org.ID, f.admin.ID, "new.hire@acme.example")
	require.NoError(t, err)
	require.Equal(t, domain.InvitationPending, inv.Status)
	require.Equal(t, f.org.ID, inv.OrgID)
	require.Equal(t, f.admin.ID, inv.InvitedBy)
	require.WithinDuration(t, time.Now().Add(7*24*time.Hour), inv.ExpiresAt, time.Minute)

	// The returned row carries the store-stamped timestamps.
	require.False(t, inv.CreatedAt.IsZero())
	require.False(t, inv.UpdatedAt.IsZero())

	require.Len(t, f.mailer.sent, 1)
	require.Equal(t, "new.hire@acme.example", f.mailer.sent[0].To)
	require.Equal(t, "Acme Corp", f.mailer.sent[0].OrgName)
	require.Equal(t, "https://admin.acme.example/invite/"+inv.ID, f.mailer.sent[0].InviteURL)
}

func TestSendInvitationRejectsBadEmail(t *testing.T) {
	ctx := context.Background()
	f := newInvitationFixture(t)

	for _, email := range []string{"", "   ", "not-an-email", "missing@"} {
		_, err := f.svc.Send(ctx, f.org.ID, f.admin.ID, email)
		require.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
	require.Empty(t, f.mailer.sent)
}

func TestSendInvitationSurvivesMailerFailure(t *testing.T) {
	ctx := context.Background()
	f := newInvitationFixture(t)
	f.mailer.err = errors.New("smtp down")

	inv, err := f.svc.Send(ctx, f.org.ID, f.admin.ID, "new.hire@acme.example")
	require.NoError(t, err)

	// The invitation persists regardless of delivery.
	got, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationPending, got.Status)
}

func TestSendInvitationAllowsDuplicates(t *testing.T) {
	ctx := context.Background()
	f := newInvitationFixture(t)

	first, err := f.svc.Send(ctx, f.org.ID, f.admin.ID, "twice@acme.example")
	require.NoError(t, err)
	second, err := f.svc.Send(ctx, f.org.ID, f.admin.ID, "twice@acme.example")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	list, err := f.svc.List(ctx, f.org.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestCancelInvitation(t *testing.T) {
	ctx := context.Background()
	f := newInvitationFixture(t)

	inv, err := f.svc.Send(ctx, f.org.ID, f.admin.ID, "leaver@acme.example")
	require.NoError(t, err)

	require.NoError(t, f.svc.Cancel(ctx, f.org.ID, inv.ID))

	got, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationExpired, got.Status)

	// A second cancel sees a non-pending invitation.
	require.ErrorIs(t, f.svc.Cancel(ctx, f.org.ID, inv.ID), ErrInvitationNotPending)
}

func TestCancelInvitationRejectsAccepted(t *testing.T) {
	ctx := context.Background()
	f := newInvitationFixture(t)

	inv, err := f.svc.Send(ctx, f.org.ID, f.admin.ID, "joined@acme.example")
	require.NoError(t, err)
	_, err = f.svc.Redeem(ctx, inv.ID, "Joined Person")
	require.NoError(t, err)

	require.ErrorIs(t, f.svc.Cancel(ctx, f.org.ID, inv.ID), ErrInvitationNotPending)
}

func TestCancelInvitationHidesCrossOrgIDs(t *testing.T) {
	ctx := context.Background()
	f := newInvitationFixture(t)

	inv, err := f.svc.Send(ctx, f.org.ID, f.admin.ID, "someone@acme.example")
	require.NoError(t, err)

	require.ErrorIs(t, f.svc.Cancel(ctx, "other-org", inv.ID), ErrInvitationNotFound)
	require.ErrorIs(t, f.svc.Cancel(ctx, f.org.ID, "no-such-id"), ErrInvitationNotFound)
}

func TestRedeemInvitation(t *testing.T) {
	ctx := context.Background()
	f := newInvitationFixture(t)

	inv, err := f.svc.Send(ctx, f.org.ID, f.admin.ID, "new.hire@acme.example")
	require.NoError(t, err)

	member, err := f.svc.Redeem(ctx, inv.ID, "New Hire")
	require.NoError(t, err)
	require.Equal(t, "new.hire@acme.example", member.Email)
	require.Equal(t, domain.RoleMember, member.Role)
	require.Equal(t, domain.MemberActive, member.Status)
	require.NotNil(t, member.OrgID)
	require.Equal(t, f.org.ID, *member.OrgID)
	require.False(t, member.CreatedAt.IsZero())

	// Redemption counts as the member's first activity.
	require.NotNil(t, member.LastActivityAt)
	require.WithinDuration(t, time.Now(), *member.LastActivityAt, time.Minute)

	got, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationAccepted, got.Status)
}

func TestRedeemInvitationSingleUse(t *testing.T) {
	ctx := context.Background()
	f := newInvitationFixture(t)

	inv, err := f.svc.Send(ctx, f.org.ID, f.admin.ID, "once@acme.example")
	require.NoError(t, err)

	_, err = f.svc.Redeem(ctx, inv.ID, "Once Only")
	require.NoError(t, err)

	_, err = f.svc.Redeem(ctx, inv.ID, "Twice Never")
	require.ErrorIs(t, err, ErrInvitationNotPending)

	members, err := f.store.Members().ListOrganizationMembers(ctx, f.org.ID)
	require.NoError(t, err)
	require.Len(t, members, 2) // seed admin + one redemption
}

func TestRedeemInvitationExpired(t *testing.T) {
	ctx := context.Background()
	f := newInvitationFixture(t)

	inv := seedInvitation(t, f.store, f.org.ID, f.admin.ID, time.Now().Add(-time.Hour))

	_, err := f.svc.Redeem(ctx, inv.ID, "Too Late")
	require.ErrorIs(t, err, ErrInvitationExpired)

	// The overdue invitation got flipped as a side effect.
	got, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationExpired, got.Status)
}

func TestRedeemInvitationUnknownID(t *testing.T) {
	ctx := context.Background()
	f := newInvitationFixture(t)

	_, err := f.svc.Redeem(ctx, "no-such-invitation", "Nobody")
	require.ErrorIs(t, err, ErrInvitationNotFound)

	_, err = f.svc.Redeem(ctx, "", "Nobody")
	require.ErrorIs(t, err, ErrInvalidRedeemRequest)
}

func TestInviteLink(t *testing.T) {
	svc := &InvitationService{PublicOrigin: "https://admin.acme.example/"}
	require.Equal(t, "https://admin.acme.example/invite/abc123", svc.InviteLink("abc123"))

	svc.PublicOrigin = "https://admin.acme.example"
	require.Equal(t, "https://admin.acme.example/invite/abc123", svc.InviteLink("abc123"))
}

func TestLinkFor(t *testing.T) {
	ctx := context.Background()
	f := newInvitationFixture(t)

	inv, err := f.svc.Send(ctx, f.org.ID, f.admin.ID, "linked@acme.example")
	require.NoError(t, err)

	link, err := f.svc.LinkFor(ctx, f.org.ID, inv.ID)
	require.NoError(t, err)
	require.Equal(t, f.svc.InviteLink(inv.ID), link)

	_, err = f.svc.LinkFor(ctx, "other-org", inv.ID)
	require.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestExpireOverdueSweep(t *testing.T) {
	ctx := context.Background()
	f := newInvitationFixture(t)

	overdue := seedInvitation(t, f.store, f.org.ID, f.admin.ID, time.Now().Add(-time.Hour))
	fresh := seedInvitation(t, f.store, f.org.ID, f.admin.ID, time.Now().Add(time.Hour))

	n, err := f.store.Invitations().ExpireOverdue(ctx, time.Now().UTC())
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err := f.store.Invitations().GetInvitationByID(ctx, overdue.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationExpired, got.Status)

	got, err = f.store.Invitations().GetInvitationByID(ctx, fresh.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationPending, got.Status)
}
