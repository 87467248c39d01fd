package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/orgdeskhq/orgdesk/internal/admin/domain"
	adminmail "github.com/orgdeskhq/orgdesk/internal/admin/mail"
	"github.com/orgdeskhq/orgdesk/internal/admin/store"
	"github.com/orgdeskhq/orgdesk/pkg/idx"
	"github.com/orgdeskhq/orgdesk/pkg/slogx"
)

var (
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrInvitationNotPending = errors.New("invitation is not pending")
	ErrInvitationExpired    = errors.New("invitation has expired")
	ErrInvalidRedeemRequest = errors.New("invalid redemption request")
)

// DefaultInviteTTL applies when the config leaves the TTL unset.
const DefaultInviteTTL = 7 * 24 * time.Hour

// InvitationService owns the invitation lifecycle: issue, list, cancel,
// build the invite link, and redeem.
type InvitationService struct {
	Store        store.Store
	Mailer       adminmail.Mailer
	PublicOrigin string
	InviteTTL    time.Duration
}

// List returns the organization's invitations, newest first.
func (s *InvitationService) List(ctx context.Context, orgID string) ([]domain.Invitation, error) {
	return s.Store.Invitations().ListOrganizationInvitations(ctx, orgID)
}

// Send issues a new pending invitation for email, attributed to the
// inviting member, and dispatches the invite email best-effort.
//
// Duplicate pending invitations for the same email are allowed; nothing at
// this layer enforces uniqueness (see DESIGN.md).
func (s *InvitationService) Send(ctx context.Context, orgID, invitedBy, email string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Invitation{}, ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		log.Warn("invitation rejected: malformed email", slog.String("email", email))
		return domain.Invitation{}, ErrInvalidEmail
	}

	org, err := s.Store.Organizations().GetOrganizationByID(ctx, orgID)
	if err != nil {
		log.Error("failed to load organization", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	ttl := s.InviteTTL
	if ttl <= 0 {
		ttl = DefaultInviteTTL
	}

	inv := domain.Invitation{
		ID:        idx.New().String(),
		Email:     email,
		OrgID:     orgID,
		InvitedBy: invitedBy,
		Status:    domain.InvitationPending,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}

	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		log.Error("failed to create invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	// The store stamps created_at/updated_at; re-read so the caller gets
	// the persisted row rather than a half-filled struct.
	inv, err = s.Store.Invitations().GetInvitationByID(ctx, inv.ID)
	if err != nil {
		return domain.Invitation{}, err
	}

	// Delivery failure must not fail the invitation; the admin can still
	// copy the invite link from the dashboard.
	if err := s.Mailer.SendInvite(ctx, adminmail.Invite{
		To:        email,
		OrgName:   org.Name,
		InviteURL: s.InviteLink(inv.ID),
	}); err != nil {
		log.Warn("invite email dispatch failed",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
	}

	log.Info("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("org_id", orgID),
		slog.String("invited_by", invitedBy),
	)

	return inv, nil
}

// Cancel transitions a pending invitation to expired. Cancelling anything
// other than a pending invitation is rejected.
func (s *InvitationService) Cancel(ctx context.Context, orgID, invitationID string) error {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return err
	}
	if inv.OrgID != orgID {
		// Cross-org ids are indistinguishable from missing ones on purpose.
		return ErrInvitationNotFound
	}
	if !inv.Status.CanTransition(domain.InvitationExpired) {
		return ErrInvitationNotPending
	}

	err = s.Store.Invitations().TransitionStatus(ctx, invitationID,
		domain.InvitationPending, domain.InvitationExpired)
	if errors.Is(err, store.ErrStaleTransition) {
		return ErrInvitationNotPending
	}
	if err != nil {
		log.Error("failed to cancel invitation",
			slog.String("invitation_id", invitationID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("invitation cancelled", slog.String("invitation_id", invitationID))
	return nil
}

// InviteLink builds the shareable redemption URL. Pure string construction:
// the invitation id is the whole credential.
func (s *InvitationService) InviteLink(invitationID string) string {
	return strings.TrimSuffix(s.PublicOrigin, "/") + "/invite/" + invitationID
}

// LinkFor returns the invite link for an existing invitation after
// checking it belongs to the caller's organization.
func (s *InvitationService) LinkFor(ctx context.Context, orgID, invitationID string) (string, error) {
	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvitationNotFound
		}
		return "", err
	}
	if inv.OrgID != orgID {
		return "", ErrInvitationNotFound
	}
	return s.InviteLink(inv.ID), nil
}

// Redeem accepts a pending invitation and creates the member account in
// one transaction. Expiry IS enforced here: an overdue invitation is
// flipped to expired and the redemption rejected.
func (s *InvitationService) Redeem(ctx context.Context, invitationID, fullName string) (domain.Member, error) {
	log := slogx.FromContext(ctx)

	if invitationID == "" {
		return domain.Member{}, ErrInvalidRedeemRequest
	}

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("redemption attempted with unknown invitation id")
			return domain.Member{}, ErrInvitationNotFound
		}
		return domain.Member{}, err
	}

	if inv.Status != domain.InvitationPending {
		log.Warn("redemption attempted on non-pending invitation",
			slog.String("invitation_id", inv.ID),
			slog.String("status", string(inv.Status)),
		)
		return domain.Member{}, ErrInvitationNotPending
	}

	if inv.Overdue(time.Now().UTC()) {
		// Flip it so the dashboard reflects reality; best-effort since
		// housekeeping would catch it anyway.
		if err := s.Store.Invitations().TransitionStatus(ctx, inv.ID,
			domain.InvitationPending, domain.InvitationExpired); err != nil {
			log.Warn("failed to expire overdue invitation during redemption",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
		}
		return domain.Member{}, ErrInvitationExpired
	}

	orgID := inv.OrgID
	member := domain.Member{
		ID:       idx.New().String(),
		Email:    inv.Email,
		FullName: strings.TrimSpace(fullName),
		Role:     domain.RoleMember,
		Status:   domain.MemberActive,
		OrgID:    &orgID,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invitations().TransitionStatus(ctx, inv.ID,
			domain.InvitationPending, domain.InvitationAccepted); err != nil {
			return err
		}
		if err := tx.Members().CreateMember(ctx, member); err != nil {
			return err
		}
		// Redeeming counts as the member's first activity.
		return tx.Members().TouchLastActivity(ctx, member.ID, time.Now().UTC())
	})
	if errors.Is(err, store.ErrStaleTransition) {
		// Lost the race with a concurrent redeem or cancel.
		return domain.Member{}, ErrInvitationNotPending
	}
	if err != nil {
		log.Error("failed to redeem invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Member{}, err
	}

	log.Info("invitation redeemed",
		slog.String("invitation_id", inv.ID),
		slog.String("member_id", member.ID),
		slog.String("org_id", inv.OrgID),
	)

	return s.Store.Members().GetMemberByID(ctx, member.ID)
}
