package http

import (
	"errors"
	"net/http"

	"github.com/orgdeskhq/orgdesk/internal/admin/service"
	"github.com/orgdeskhq/orgdesk/pkg/httpx"
	"github.com/orgdeskhq/orgdesk/pkg/slogx"
)

type MembersHandler struct {
	MemberService *service.MemberService
}

// HandleList godoc
//
//	@Summary		List Organization Members
//	@Description	Returns the organization's members ordered newest first. Removed members never appear.
//	@Tags			Members
//	@Produce		json
//	@Success		200	{array}		orgsdk.Member
//	@Failure		500	{object}	orgsdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/org/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	members, err := h.MemberService.List(ctx, httpx.OrgID(ctx))
	if err != nil {
		log.Error("failed to list members", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to load members")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireMembers(members))
}

// HandleRemove godoc
//
//	@Summary		Remove Organization Member
//	@Description	Soft-removes a member: suspends the account and detaches it from the organization. Admin members cannot be removed.
//	@Tags			Members
//	@Produce		json
//	@Param			id	path	string	true	"Member ID"
//	@Success		204
//	@Failure		403	{object}	orgsdk.ErrorResponse	"error"
//	@Failure		404	{object}	orgsdk.ErrorResponse	"error"
//	@Failure		409	{object}	orgsdk.ErrorResponse	"error"
//	@Failure		500	{object}	orgsdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/org/members/{id} [delete].
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	memberID := r.PathValue("id")
	if memberID == "" {
		writeError(w, http.StatusBadRequest, "Member id is required")
		return
	}

	err := h.MemberService.Remove(ctx, httpx.OrgID(ctx), memberID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			writeError(w, http.StatusNotFound, "Member not found")
		case errors.Is(err, service.ErrMemberIsAdmin):
			writeError(w, http.StatusForbidden, "Admin members cannot be removed")
		case errors.Is(err, service.ErrMemberNotRemovable):
			writeError(w, http.StatusConflict, "Member cannot be removed in its current state")
		default:
			log.Error("failed to remove member", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to remove member")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
