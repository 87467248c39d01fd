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

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap the Service
//	@Description	Creates the first organization and its admin member. Only available with a configured bootstrap token and only until an organization exists.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			request	body		orgsdk.BootstrapRequest	true	"Bootstrap configuration"
//	@Success		201		{object}	orgsdk.BootstrapResponse
//	@Failure		400		{object}	orgsdk.ErrorResponse	"error"
//	@Failure		403		{object}	orgsdk.ErrorResponse	"error"
//	@Failure		409		{object}	orgsdk.ErrorResponse	"error"
//	@Failure		500		{object}	orgsdk.ErrorResponse	"error"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req orgsdk.BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.BootstrapService.Bootstrap(ctx, service.BootstrapRequest{
		Token:           req.Token,
		OrgName:         req.OrgName,
		OrgDomain:       req.OrgDomain,
		PlanType:        req.PlanType,
		AdminEmail:      req.AdminEmail,
		AdminFullName:   req.AdminFullName,
		MaxUsers:        req.MaxUsers,
		MaxChatSessions: req.MaxChatSessions,
		MonthlyTokens:   req.MonthlyTokenLimit,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapForbidden):
			writeError(w, http.StatusForbidden, "Bootstrap token mismatch")
		case errors.Is(err, service.ErrAlreadyBootstrapped):
			writeError(w, http.StatusConflict, "Service is already bootstrapped")
		case errors.Is(err, service.ErrInvalidBootstrap):
			writeError(w, http.StatusBadRequest, "org_name and admin_email are required")
		default:
			log.Error("bootstrap failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Bootstrap failed")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, orgsdk.BootstrapResponse{
		Organization: toWireOrganization(res.Organization),
		Admin:        toWireMember(res.Admin),
	})
}
