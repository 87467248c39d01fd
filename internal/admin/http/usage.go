package http

import (
	"errors"
	"net/http"

	"github.com/orgdeskhq/orgdesk/internal/admin/service"
	"github.com/orgdeskhq/orgdesk/pkg/httpx"
	"github.com/orgdeskhq/orgdesk/pkg/slogx"
)

type UsageHandler struct {
	UsageService *service.UsageService
}

// ServeHTTP godoc
//
//	@Summary		Get Organization Usage
//	@Description	Returns plan-limit consumption: active members, chat sessions, and monthly tokens, each with a percentage and color band
//	@Tags			Usage
//	@Produce		json
//	@Success		200	{object}	orgsdk.UsageResponse
//	@Failure		404	{object}	orgsdk.ErrorResponse	"error"
//	@Failure		500	{object}	orgsdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/org/usage [get].
func (h *UsageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	snap, err := h.UsageService.Snapshot(ctx, httpx.OrgID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			writeError(w, http.StatusNotFound, "Organization not found")
			return
		}
		log.Error("failed to compute usage", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to compute usage")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireUsage(snap))
}
