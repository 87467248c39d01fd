package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/orgdeskhq/orgdesk/internal/admin/service"
	"github.com/orgdeskhq/orgdesk/pkg/httpx"
	"github.com/orgdeskhq/orgdesk/pkg/orgsdk"
	"github.com/orgdeskhq/orgdesk/pkg/slogx"
)

type InvitationsHandler struct {
	InvitationService *service.InvitationService
}

// HandleList godoc
//
//	@Summary		List Organization Invitations
//	@Description	Returns the organization's invitations ordered newest first
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{array}		orgsdk.Invitation
//	@Failure		500	{object}	orgsdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/org/invitations [get].
func (h *InvitationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	invitations, err := h.InvitationService.List(ctx, httpx.OrgID(ctx))
	if err != nil {
		log.Error("failed to list invitations", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to load invitations")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireInvitations(invitations))
}

// HandleSend godoc
//
//	@Summary		Send Invitation
//	@Description	Creates a pending invitation and emails the invite link. The organization and user ids in the body must match the caller's token.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		orgsdk.SendInvitationRequest	true	"email, organization_id, user_id"
//	@Success		201		{object}	orgsdk.Invitation
//	@Failure		400		{object}	orgsdk.ErrorResponse	"error"
//	@Failure		500		{object}	orgsdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationsHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req orgsdk.SendInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The body carries the org and inviter ids the dashboard knows; both
	// must agree with the verified token before anything is written.
	if req.OrganizationID != httpx.OrgID(ctx) {
		writeError(w, http.StatusBadRequest, "organization_id does not match the caller's organization")
		return
	}
	if req.UserID != httpx.MemberID(ctx) {
		writeError(w, http.StatusBadRequest, "user_id does not match the caller")
		return
	}

	inv, err := h.InvitationService.Send(ctx, req.OrganizationID, req.UserID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, "A valid email address is required")
		case errors.Is(err, service.ErrOrganizationNotFound):
			writeError(w, http.StatusNotFound, "Organization not found")
		default:
			log.Error("failed to send invitation", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to send invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWireInvitation(inv))
}

// HandleCancel godoc
//
//	@Summary		Cancel Invitation
//	@Description	Expires a pending invitation so its link can no longer be redeemed
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path	string	true	"Invitation ID"
//	@Success		204
//	@Failure		404	{object}	orgsdk.ErrorResponse	"error"
//	@Failure		409	{object}	orgsdk.ErrorResponse	"error"
//	@Failure		500	{object}	orgsdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/org/invitations/{id}/cancel [post].
func (h *InvitationsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.InvitationService.Cancel(ctx, httpx.OrgID(ctx), r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			writeError(w, http.StatusNotFound, "Invitation not found")
		case errors.Is(err, service.ErrInvitationNotPending):
			writeError(w, http.StatusConflict, "Only pending invitations can be cancelled")
		default:
			log.Error("failed to cancel invitation", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to cancel invitation")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleLink godoc
//
//	@Summary		Get Invite Link
//	@Description	Returns the shareable redemption URL for an invitation
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string	true	"Invitation ID"
//	@Success		200	{object}	orgsdk.InviteLinkResponse
//	@Failure		404	{object}	orgsdk.ErrorResponse	"error"
//	@Failure		500	{object}	orgsdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/org/invitations/{id}/link [get].
func (h *InvitationsHandler) HandleLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	link, err := h.InvitationService.LinkFor(ctx, httpx.OrgID(ctx), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrInvitationNotFound) {
			writeError(w, http.StatusNotFound, "Invitation not found")
			return
		}
		log.Error("failed to build invite link", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to build invite link")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, orgsdk.InviteLinkResponse{InviteURL: link})
}

type RedeemHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Redeem Invitation
//	@Description	Accepts a pending, unexpired invitation and creates an active member in its organization
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		orgsdk.RedeemInvitationRequest	true	"invitation_id, full_name"
//	@Success		200		{object}	orgsdk.Member
//	@Failure		400		{object}	orgsdk.ErrorResponse	"error"
//	@Failure		404		{object}	orgsdk.ErrorResponse	"error"
//	@Failure		409		{object}	orgsdk.ErrorResponse	"error"
//	@Failure		410		{object}	orgsdk.ErrorResponse	"error"
//	@Failure		500		{object}	orgsdk.ErrorResponse	"error"
//	@Router			/v1/invitations/redeem [post].
func (h *RedeemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req orgsdk.RedeemInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := h.InvitationService.Redeem(ctx, req.InvitationID, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRedeemRequest):
			writeError(w, http.StatusBadRequest, "invitation_id is required")
		case errors.Is(err, service.ErrInvitationNotFound):
			writeError(w, http.StatusNotFound, "Invitation not found")
		case errors.Is(err, service.ErrInvitationNotPending):
			writeError(w, http.StatusConflict, "Invitation has already been used or cancelled")
		case errors.Is(err, service.ErrInvitationExpired):
			writeError(w, http.StatusGone, "Invitation has expired")
		default:
			log.Error("failed to redeem invitation", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to redeem invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireMember(member))
}
