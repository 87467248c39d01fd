package store

import (
	"context"
	"errors"
	"time"

	"github.com/orgdeskhq/orgdesk/internal/admin/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrStaleTransition is returned by guarded status updates when the row
	// was not in the expected prior status. A lost race surfaces as this
	// error instead of a double transition.
	ErrStaleTransition = errors.New("store: stale status transition")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement it. Sub-repositories keep concerns tidy and individually
// mockable in tests.
type Store interface {
	Organizations() Organizations
	Members() Members
	Invitations() Invitations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST Commit() or Rollback() the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil
	// and rolling back otherwise. Preferred over Tx for multi-step
	// mutations (invitation redemption, member removal).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying resources.
	Close() error

	// Ping verifies the database connection is alive (readiness probe).
	Ping(ctx context.Context) error
}

// Tx is a transactional store with Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Organizations interface {
	// GetOrganizationByID returns the full organization record.
	GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error)

	// CreateOrganization inserts a new organization (id provided by the app
	// via ULID). Only reachable through bootstrap.
	CreateOrganization(ctx context.Context, org domain.Organization) error

	// UpdateSettings writes exactly the editable settings fields and bumps
	// updated_at. Domain and subscription_status are untouchable here.
	UpdateSettings(ctx context.Context, orgID string, s domain.OrganizationSettings) error

	// IsEmpty reports whether no organizations exist (bootstrap gate).
	IsEmpty(ctx context.Context) (bool, error)
}

type Members interface {
	// GetMemberByID returns a member regardless of organization affiliation.
	GetMemberByID(ctx context.Context, id string) (domain.Member, error)

	// ListOrganizationMembers returns members still affiliated with the
	// organization, newest first. Removed members (org cleared) never show.
	ListOrganizationMembers(ctx context.Context, orgID string) ([]domain.Member, error)

	// CreateMember inserts a new member row (invitation redemption,
	// bootstrap).
	CreateMember(ctx context.Context, m domain.Member) error

	// RemoveFromOrganization performs the soft removal: clears the
	// organization reference and sets status to suspended in one statement.
	RemoveFromOrganization(ctx context.Context, memberID string) error

	// CountActiveMembers counts members with status=active in the org,
	// feeding the seat-usage meter.
	CountActiveMembers(ctx context.Context, orgID string) (int64, error)

	// TouchLastActivity records activity for the member.
	TouchLastActivity(ctx context.Context, memberID string, at time.Time) error
}

type Invitations interface {
	// CreateInvitation writes a new pending invitation.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID fetches an invitation by its id/token.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// ListOrganizationInvitations returns the org's invitations, newest
	// first.
	ListOrganizationInvitations(ctx context.Context, orgID string) ([]domain.Invitation, error)

	// TransitionStatus moves an invitation from one status to another with
	// a guarded update (WHERE status = from). Returns ErrStaleTransition
	// when the row was not in the expected status.
	TransitionStatus(ctx context.Context, id string, from, to domain.InvitationStatus) error

	// ExpireOverdue flips every pending invitation past its expiry to
	// expired and returns how many rows changed. Housekeeping.
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}
