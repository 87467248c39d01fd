package orgsdk

import (
	"context"
	"net/http"
)

// GetOrganization fetches the caller's organization (requires admin:read).
func (c *Client) GetOrganization(ctx context.Context) (*Organization, error) {
	var org Organization
	if err := c.do(ctx, http.MethodGet, "/v1/org", nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// UpdateSettings replaces the five editable organization fields and
// returns the refreshed snapshot (requires admin:write).
func (c *Client) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*Organization, error) {
	var org Organization
	if err := c.do(ctx, http.MethodPatch, "/v1/org/settings", req, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// ListMembers fetches the organization's members, newest first (requires
// admin:read). On any failure it degrades to an empty list, matching the
// dashboard's tolerant loads; callers who need the error should use
// ListMembersStrict.
func (c *Client) ListMembers(ctx context.Context) []Member {
	members, err := c.ListMembersStrict(ctx)
	if err != nil {
		return []Member{}
	}
	return members
}

// ListMembersStrict is ListMembers without the degradation.
func (c *Client) ListMembersStrict(ctx context.Context) ([]Member, error) {
	var members []Member
	if err := c.do(ctx, http.MethodGet, "/v1/org/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// RemoveMember soft-removes a member from the organization (requires
// admin:write). Admins cannot be removed.
func (c *Client) RemoveMember(ctx context.Context, memberID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/org/members/"+memberID, nil, nil)
}

// Usage fetches the organization's plan-limit consumption (requires
// admin:read).
func (c *Client) Usage(ctx context.Context) (*UsageResponse, error) {
	var usage UsageResponse
	if err := c.do(ctx, http.MethodGet, "/v1/org/usage", nil, &usage); err != nil {
		return nil, err
	}
	return &usage, nil
}

// ListInvitations fetches the organization's invitations, newest first
// (requires admin:read). Degrades to an empty list on failure like
// ListMembers.
func (c *Client) ListInvitations(ctx context.Context) []Invitation {
	invitations, err := c.ListInvitationsStrict(ctx)
	if err != nil {
		return []Invitation{}
	}
	return invitations
}

// ListInvitationsStrict is ListInvitations without the degradation.
func (c *Client) ListInvitationsStrict(ctx context.Context) ([]Invitation, error) {
	var invitations []Invitation
	if err := c.do(ctx, http.MethodGet, "/v1/org/invitations", nil, &invitations); err != nil {
		return nil, err
	}
	return invitations, nil
}

// SendInvitation creates a pending invitation and triggers the invite
// email (requires admin:write).
func (c *Client) SendInvitation(ctx context.Context, req SendInvitationRequest) (*Invitation, error) {
	var inv Invitation
	if err := c.do(ctx, http.MethodPost, "/v1/invitations", req, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// CancelInvitation expires a pending invitation (requires admin:write).
func (c *Client) CancelInvitation(ctx context.Context, invitationID string) error {
	return c.do(ctx, http.MethodPost, "/v1/org/invitations/"+invitationID+"/cancel", nil, nil)
}

// InviteLink fetches the shareable redemption URL for an invitation
// (requires admin:read).
func (c *Client) InviteLink(ctx context.Context, invitationID string) (string, error) {
	var resp InviteLinkResponse
	if err := c.do(ctx, http.MethodGet, "/v1/org/invitations/"+invitationID+"/link", nil, &resp); err != nil {
		return "", err
	}
	return resp.InviteURL, nil
}
