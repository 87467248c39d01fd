package orgdesk_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orgdeskhq/orgdesk/pkg/orgsdk"
)

func TestInvitationLifecycle(t *testing.T) {
	baseURL := setupContainer(t)
	admin, res := bootstrapOrg(t, baseURL)

	// Send an invitation.
	inv, err := admin.SendInvitation(t.Context(), orgsdk.SendInvitationRequest{
		Email:          "new.hire@acme.example",
		OrganizationID: res.Organization.ID,
		UserID:         res.Admin.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "pending", inv.Status)
	require.Equal(t, res.Admin.ID, inv.InvitedBy)

	// It shows up in the listing.
	invitations, err := admin.ListInvitationsStrict(t.Context())
	require.NoError(t, err)
	require.Len(t, invitations, 1)
	require.Equal(t, inv.ID, invitations[0].ID)

	// The invite link embeds the id under the configured origin.
	link, err := admin.InviteLink(t.Context(), inv.ID)
	require.NoError(t, err)
	require.Equal(t, "https://admin.acme.example/invite/"+inv.ID, link)
	require.True(t, strings.HasSuffix(link, inv.ID))

	// Redeem it as the invitee.
	public := orgsdk.NewClient(baseURL, "")
	member, err := public.RedeemInvitation(t.Context(), orgsdk.RedeemInvitationRequest{
		InvitationID: inv.ID,
		FullName:     "New Hire",
	})
	require.NoError(t, err)
	require.Equal(t, "new.hire@acme.example", member.Email)
	require.Equal(t, "member", member.Role)
	require.Equal(t, "active", member.Status)
	require.Equal(t, res.Organization.ID, member.OrganizationID)

	// The invitation is now accepted and cannot be redeemed twice.
	invitations, err = admin.ListInvitationsStrict(t.Context())
	require.NoError(t, err)
	require.Equal(t, "accepted", invitations[0].Status)

	_, err = public.RedeemInvitation(t.Context(), orgsdk.RedeemInvitationRequest{
		InvitationID: inv.ID,
		FullName:     "Imposter",
	})
	require.Error(t, err)
	require.True(t, orgsdk.IsConflict(err), "expected 409, got %v", err)

	// The new member appears in the member listing.
	members, err := admin.ListMembersStrict(t.Context())
	require.NoError(t, err)
	require.Len(t, members, 2)
}

func TestInvitationCancel(t *testing.T) {
	baseURL := setupContainer(t)
	admin, res := bootstrapOrg(t, baseURL)

	inv, err := admin.SendInvitation(t.Context(), orgsdk.SendInvitationRequest{
		Email:          "leaver@acme.example",
		OrganizationID: res.Organization.ID,
		UserID:         res.Admin.ID,
	})
	require.NoError(t, err)

	require.NoError(t, admin.CancelInvitation(t.Context(), inv.ID))

	invitations, err := admin.ListInvitationsStrict(t.Context())
	require.NoError(t, err)
	require.Equal(t, "expired", invitations[0].Status)

	// Cancelled invitations cannot be redeemed.
	public := orgsdk.NewClient(baseURL, "")
	_, err = public.RedeemInvitation(t.Context(), orgsdk.RedeemInvitationRequest{
		InvitationID: inv.ID,
	})
	require.Error(t, err)
	require.True(t, orgsdk.IsConflict(err), "expected 409, got %v", err)

	// And cannot be cancelled again.
	err = admin.CancelInvitation(t.Context(), inv.ID)
	require.Error(t, err)
	require.True(t, orgsdk.IsConflict(err), "expected 409, got %v", err)
}

func TestInvitationValidation(t *testing.T) {
	baseURL := setupContainer(t)
	admin, res := bootstrapOrg(t, baseURL)

	// Malformed email.
	_, err := admin.SendInvitation(t.Context(), orgsdk.SendInvitationRequest{
		Email:          "not-an-email",
		OrganizationID: res.Organization.ID,
		UserID:         res.Admin.ID,
	})
	require.Error(t, err)

	// Body ids must match the token claims.
	_, err = admin.SendInvitation(t.Context(), orgsdk.SendInvitationRequest{
		Email:          "ok@acme.example",
		OrganizationID: "some-other-org",
		UserID:         res.Admin.ID,
	})
	require.Error(t, err)

	_, err = admin.SendInvitation(t.Context(), orgsdk.SendInvitationRequest{
		Email:          "ok@acme.example",
		OrganizationID: res.Organization.ID,
		UserID:         "someone-else",
	})
	require.Error(t, err)

	// Nothing slipped through.
	invitations, err := admin.ListInvitationsStrict(t.Context())
	require.NoError(t, err)
	require.Empty(t, invitations)
}

func TestRedeemUnknownInvitation(t *testing.T) {
	baseURL := setupContainer(t)
	_, _ = bootstrapOrg(t, baseURL)

	public := orgsdk.NewClient(baseURL, "")
	_, err := public.RedeemInvitation(t.Context(), orgsdk.RedeemInvitationRequest{
		InvitationID: "01K0000000000000000000FAKE",
	})
	require.Error(t, err)
	require.True(t, orgsdk.IsNotFound(err), "expected 404, got %v", err)
}
