package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/orgdeskhq/orgdesk/internal/admin/domain"
	"github.com/orgdeskhq/orgdesk/internal/admin/store"
)

type membersRepo struct {
	db dbtx
}

const memberColumns = `id, email, full_name, role, status, organization_id,
	created_at, last_activity_at, updated_at`

func scanMember(scan func(dest ...any) error) (domain.Member, error) {
	var (
		m            domain.Member
		orgID        sql.NullString
		lastActivity sql.NullTime
	)
	err := scan(
		&m.ID, &m.Email, &m.FullName, &m.Role, &m.Status, &orgID,
		&m.CreatedAt, &lastActivity, &m.UpdatedAt,
	)
	if err != nil {
		return domain.Member{}, err
	}
	m.OrgID = mapNullString(orgID)
	m.LastActivityAt = mapNullTime(lastActivity)
	return m, nil
}

func (r *membersRepo) GetMemberByID(ctx context.Context, id string) (domain.Member, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE id = ?`, id)

	m, err := scanMember(row.Scan)
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membersRepo) ListOrganizationMembers(ctx context.Context, orgID string) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+memberColumns+` FROM members
		 WHERE organization_id = ?
		 ORDER BY created_at DESC`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows.Scan)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO members (
			id, email, full_name, role, status, organization_id,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Email, m.FullName, m.Role, m.Status, mapOptionalString(m.OrgID),
		now, now,
	)
	return err
}

// RemoveFromOrganization is the soft removal: one statement setting both
// fields so the pair can never be observed half-applied.
func (r *membersRepo) RemoveFromOrganization(ctx context.Context, memberID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE members
		SET organization_id = NULL, status = ?, updated_at = ?
		WHERE id = ?`,
		domain.MemberSuspended, time.Now().UTC(), memberID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *membersRepo) CountActiveMembers(ctx context.Context, orgID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM members
		WHERE organization_id = ? AND status = ?`,
		orgID, domain.MemberActive,
	).Scan(&count)
	return count, err
}

func (r *membersRepo) TouchLastActivity(ctx context.Context, memberID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE members SET last_activity_at = ?, updated_at = ? WHERE id = ?`,
		at.UTC(), time.Now().UTC(), memberID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

// requireRowChanged maps "0 rows affected" to ErrNotFound so callers can
// distinguish a missing row from a successful update.
func requireRowChanged(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
