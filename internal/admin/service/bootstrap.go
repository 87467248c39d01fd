package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"github.com/orgdeskhq/orgdesk/internal/admin/domain"
	"github.com/orgdeskhq/orgdesk/internal/admin/store"
	"github.com/orgdeskhq/orgdesk/pkg/idx"
	"github.com/orgdeskhq/orgdesk/pkg/slogx"
)

var (
	ErrBootstrapForbidden  = errors.New("bootstrap token mismatch")
	ErrAlreadyBootstrapped = errors.New("service already has an organization")
	ErrInvalidBootstrap    = errors.New("invalid bootstrap request")
)

// BootstrapService creates the first organization and its admin member on
// a fresh deployment. It is a one-shot door: once any organization exists
// the endpoint refuses.
type BootstrapService struct {
	Store store.Store
	Token string
}

// BootstrapRequest carries everything needed to seed the first org.
type BootstrapRequest struct {
	Token           string
	OrgName         string
	OrgDomain       string
	PlanType        string
	AdminEmail      string
	AdminFullName   string
	MaxUsers        int64
	MaxChatSessions int64
	MonthlyTokens   int64
}

// BootstrapResult reports what was created.
type BootstrapResult struct {
	Organization domain.Organization
	Admin        domain.Member
}

func (s *BootstrapService) Bootstrap(ctx context.Context, req BootstrapRequest) (BootstrapResult, error) {
	log := slogx.FromContext(ctx)

	if s.Token == "" ||
		subtle.ConstantTimeCompare([]byte(req.Token), []byte(s.Token)) != 1 {
		log.Warn("bootstrap refused: token mismatch")
		return BootstrapResult{}, ErrBootstrapForbidden
	}

	req.OrgName = strings.TrimSpace(req.OrgName)
	req.AdminEmail = strings.TrimSpace(req.AdminEmail)
	if req.OrgName == "" || req.AdminEmail == "" {
		return BootstrapResult{}, ErrInvalidBootstrap
	}
	if req.PlanType == "" {
		req.PlanType = "starter"
	}

	empty, err := s.Store.Organizations().IsEmpty(ctx)
	if err != nil {
		return BootstrapResult{}, err
	}
	if !empty {
		return BootstrapResult{}, ErrAlreadyBootstrapped
	}

	org := domain.Organization{
		ID:                 idx.New().String(),
		Name:               req.OrgName,
		Domain:             req.OrgDomain,
		PlanType:           req.PlanType,
		SubscriptionStatus: "active",
		MaxUsers:           req.MaxUsers,
		MaxChatSessions:    req.MaxChatSessions,
		MonthlyTokenLimit:  req.MonthlyTokens,
	}
	orgID := org.ID
	admin := domain.Member{
		ID:       idx.New().String(),
		Email:    req.AdminEmail,
		FullName: strings.TrimSpace(req.AdminFullName),
		Role:     domain.RoleAdmin,
		Status:   domain.MemberActive,
		OrgID:    &orgID,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Organizations().CreateOrganization(ctx, org); err != nil {
			return err
		}
		return tx.Members().CreateMember(ctx, admin)
	})
	if err != nil {
		log.Error("bootstrap failed", slog.Any("error", err))
		return BootstrapResult{}, err
	}

	log.Info("service bootstrapped",
		slog.String("org_id", org.ID),
		slog.String("admin_id", admin.ID),
	)

	// Re-read both rows so the result carries the store-stamped timestamps.
	org, err = s.Store.Organizations().GetOrganizationByID(ctx, org.ID)
	if err != nil {
		return BootstrapResult{}, err
	}
	admin, err = s.Store.Members().GetMemberByID(ctx, admin.ID)
	if err != nil {
		return BootstrapResult{}, err
	}

	return BootstrapResult{Organization: org, Admin: admin}, nil
}
