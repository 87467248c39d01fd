package sqlite

import (
	"context"
	"time"

	"github.com/orgdeskhq/orgdesk/internal/admin/domain"
	"github.com/orgdeskhq/orgdesk/internal/admin/store"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, email, organization_id, invited_by, status,
	created_at, expires_at, updated_at`

func scanInvitation(scan func(dest ...any) error) (domain.Invitation, error) {
	var inv domain.Invitation
	err := scan(
		&inv.ID, &inv.Email, &inv.OrgID, &inv.InvitedBy, &inv.Status,
		&inv.CreatedAt, &inv.ExpiresAt, &inv.UpdatedAt,
	)
	return inv, err
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invitations (
			id, email, organization_id, invited_by, status,
			created_at, expires_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Email, inv.OrgID, inv.InvitedBy, inv.Status,
		now, inv.ExpiresAt.UTC(), now,
	)
	return err
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = ?`, id)

	inv, err := scanInvitation(row.Scan)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) ListOrganizationInvitations(ctx context.Context, orgID string) ([]domain.Invitation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations
		 WHERE organization_id = ?
		 ORDER BY created_at DESC`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows.Scan)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

// TransitionStatus is a guarded update: the WHERE clause pins the prior
// status so concurrent transitions collapse to exactly one winner.
func (r *invitationsRepo) TransitionStatus(ctx context.Context, id string, from, to domain.InvitationStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invitations
		SET status = ?, updated_at = ?
		WHERE id = ? AND status = ?`,
		to, time.Now().UTC(), id, from,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either the row is missing or it was not in the expected status.
		if _, err := r.GetInvitationByID(ctx, id); err != nil {
			return err
		}
		return store.ErrStaleTransition
	}
	return nil
}

func (r *invitationsRepo) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invitations
		SET status = ?, updated_at = ?
		WHERE status = ? AND expires_at < ?`,
		domain.InvitationExpired, now.UTC(),
		domain.InvitationPending, now.UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
