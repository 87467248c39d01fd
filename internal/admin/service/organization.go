package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/orgdeskhq/orgdesk/internal/admin/domain"
	"github.com/orgdeskhq/orgdesk/internal/admin/store"
	"github.com/orgdeskhq/orgdesk/pkg/slogx"
)

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrInvalidSettings      = errors.New("invalid organization settings")
)

// OrganizationService serves the organization profile and its editable
// settings subset.
type OrganizationService struct {
	Store store.Store
}

func (s *OrganizationService) Get(ctx context.Context, orgID string) (domain.Organization, error) {
	org, err := s.Store.Organizations().GetOrganizationByID(ctx, orgID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Organization{}, ErrOrganizationNotFound
	}
	return org, err
}

// UpdateSettings persists the five editable settings fields and returns
// the refreshed organization. Anything outside those fields is untouched.
func (s *OrganizationService) UpdateSettings(ctx context.Context, orgID string, settings domain.OrganizationSettings) (domain.Organization, error) {
	log := slogx.FromContext(ctx)

	settings.Name = strings.TrimSpace(settings.Name)
	if settings.Name == "" {
		return domain.Organization{}, ErrInvalidSettings
	}
	if settings.MaxUsers < 0 || settings.MaxChatSessions < 0 || settings.MonthlyTokenLimit < 0 {
		return domain.Organization{}, ErrInvalidSettings
	}

	err := s.Store.Organizations().UpdateSettings(ctx, orgID, settings)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Organization{}, ErrOrganizationNotFound
	}
	if err != nil {
		log.Error("failed to update organization settings",
			slog.String("org_id", orgID),
			slog.Any("error", err),
		)
		return domain.Organization{}, err
	}

	log.Info("organization settings updated", slog.String("org_id", orgID))
	return s.Get(ctx, orgID)
}
