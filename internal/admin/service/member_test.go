package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orgdeskhq/orgdesk/internal/admin/domain"
)

func TestRemoveMember(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	org := seedOrg(t, s)
	member := seedMember(t, s, org.ID, domain.RoleMember, domain.MemberActive)

	svc := &MemberService{Store: s}
	require.NoError(t, svc.Remove(ctx, org.ID, member.ID))

	// Soft removal: the row survives, detached and suspended.
	got, err := s.Members().GetMemberByID(ctx, member.ID)
	require.NoError(t, err)
	require.Nil(t, got.OrgID)
	require.Equal(t, domain.MemberSuspended, got.Status)
	require.Equal(t, member.Email, got.Email)

	// And it no longer shows up in the org listing.
	list, err := svc.List(ctx, org.ID)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestRemoveMemberRefusesAdmins(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	org := seedOrg(t, s)
	admin := seedMember(t, s, org.ID, domain.RoleAdmin, domain.MemberActive)

	svc := &MemberService{Store: s}
	require.ErrorIs(t, svc.Remove(ctx, org.ID, admin.ID), ErrMemberIsAdmin)

	got, err := s.Members().GetMemberByID(ctx, admin.ID)
	require.NoError(t, err)
	require.Equal(t, domain.MemberActive, got.Status)
	require.NotNil(t, got.OrgID)
}

func TestRemoveMemberAlreadySuspended(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	org := seedOrg(t, s)
	member := seedMember(t, s, org.ID, domain.RoleMember, domain.MemberSuspended)

	svc := &MemberService{Store: s}
	require.ErrorIs(t, svc.Remove(ctx, org.ID, member.ID), ErrMemberNotRemovable)
}

func TestRemoveMemberCrossOrg(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	org := seedOrg(t, s)
	member := seedMember(t, s, org.ID, domain.RoleMember, domain.MemberActive)

	svc := &MemberService{Store: s}
	require.ErrorIs(t, svc.Remove(ctx, "other-org", member.ID), ErrMemberNotFound)
	require.ErrorIs(t, svc.Remove(ctx, org.ID, "no-such-member"), ErrMemberNotFound)
}

func TestListMembersNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	org := seedOrg(t, s)

	seedMember(t, s, org.ID, domain.RoleMember, domain.MemberActive)
	seedMember(t, s, org.ID, domain.RoleMember, domain.MemberInvited)
	seedMember(t, s, org.ID, domain.RoleMember, domain.MemberPending)

	svc := &MemberService{Store: s}
	list, err := svc.List(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
}
