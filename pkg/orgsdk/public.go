package orgsdk

import (
	"context"
	"net/http"
)

// RedeemInvitation accepts a pending invitation and returns the member it
// created. Public endpoint; no token required.
func (c *Client) RedeemInvitation(ctx context.Context, req RedeemInvitationRequest) (*Member, error) {
	var m Member
	if err := c.do(ctx, http.MethodPost, "/v1/invitations/redeem", req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Bootstrap seeds the first organization and admin. Only works on a fresh
// deployment with a matching bootstrap token.
func (c *Client) Bootstrap(ctx context.Context, req BootstrapRequest) (*BootstrapResponse, error) {
	var resp BootstrapResponse
	if err := c.do(ctx, http.MethodPost, "/v1/bootstrap", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Livez checks process liveness.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var h HealthResponse
	if err := c.do(ctx, http.MethodGet, "/livez", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Readyz checks readiness, including database connectivity.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var h HealthResponse
	if err := c.do(ctx, http.MethodGet, "/readyz", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
