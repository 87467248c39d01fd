package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/orgdeskhq/orgdesk/internal/admin/domain"
	"github.com/orgdeskhq/orgdesk/internal/admin/store"
	"github.com/orgdeskhq/orgdesk/pkg/slogx"
)

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrMemberIsAdmin      = errors.New("cannot remove an admin member")
	ErrMemberNotRemovable = errors.New("member cannot be removed in its current state")
)

// MemberService lists and removes organization members. Removal is soft:
// the member row survives with a cleared organization and suspended status.
type MemberService struct {
	Store store.Store
}

// List returns the organization's members, newest first.
func (s *MemberService) List(ctx context.Context, orgID string) ([]domain.Member, error) {
	return s.Store.Members().ListOrganizationMembers(ctx, orgID)
}

// Remove detaches a member from the organization. Admins are never
// removable through this path, and members already suspended are rejected.
func (s *MemberService) Remove(ctx context.Context, orgID, memberID string) error {
	log := slogx.FromContext(ctx)

	m, err := s.Store.Members().GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	if m.OrgID == nil || *m.OrgID != orgID {
		return ErrMemberNotFound
	}
	if m.Role == domain.RoleAdmin {
		log.Warn("refused to remove admin member",
			slog.String("member_id", memberID),
			slog.String("org_id", orgID),
		)
		return ErrMemberIsAdmin
	}
	if !m.Status.CanSuspend() {
		return ErrMemberNotRemovable
	}

	if err := s.Store.Members().RemoveFromOrganization(ctx, memberID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		log.Error("failed to remove member",
			slog.String("member_id", memberID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("member removed from organization",
		slog.String("member_id", memberID),
		slog.String("org_id", orgID),
	)
	return nil
}
