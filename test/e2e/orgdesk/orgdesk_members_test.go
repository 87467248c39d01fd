package orgdesk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orgdeskhq/orgdesk/pkg/orgsdk"
)

// join redeems a fresh invitation and returns the created member.
func join(t *testing.T, baseURL string, admin *orgsdk.Client, res *orgsdk.BootstrapResponse, email string) *orgsdk.Member {
	t.Helper()

	inv, err := admin.SendInvitation(t.Context(), orgsdk.SendInvitationRequest{
		Email:          email,
		OrganizationID: res.Organization.ID,
		UserID:         res.Admin.ID,
	})
	require.NoError(t, err)

	public := orgsdk.NewClient(baseURL, "")
	member, err := public.RedeemInvitation(t.Context(), orgsdk.RedeemInvitationRequest{
		InvitationID: inv.ID,
		FullName:     "Joined " + email,
	})
	require.NoError(t, err)
	return member
}

func TestMemberRemoval(t *testing.T) {
	baseURL := setupContainer(t)
	admin, res := bootstrapOrg(t, baseURL)

	member := join(t, baseURL, admin, res, "removable@acme.example")

	require.NoError(t, admin.RemoveMember(t.Context(), member.ID))

	// The removed member no longer appears in the listing.
	members, err := admin.ListMembersStrict(t.Context())
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, res.Admin.ID, members[0].ID)

	// Removing again: the member is already detached from the org.
	err = admin.RemoveMember(t.Context(), member.ID)
	require.Error(t, err)
	require.True(t, orgsdk.IsNotFound(err), "expected 404, got %v", err)
}

func TestAdminCannotBeRemoved(t *testing.T) {
	baseURL := setupContainer(t)
	admin, res := bootstrapOrg(t, baseURL)

	err := admin.RemoveMember(t.Context(), res.Admin.ID)
	require.Error(t, err)
	require.True(t, orgsdk.IsForbidden(err), "expected 403, got %v", err)

	members, err := admin.ListMembersStrict(t.Context())
	require.NoError(t, err)
	require.Len(t, members, 1)
}
