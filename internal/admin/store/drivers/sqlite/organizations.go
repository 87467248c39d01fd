package sqlite

import (
	"context"
	"time"

	"github.com/orgdeskhq/orgdesk/internal/admin/domain"
)

type organizationsRepo struct {
	db dbtx
}

const organizationColumns = `id, name, domain, plan_type, subscription_status,
	max_users, max_chat_sessions, monthly_token_limit, created_at, updated_at`

func (r *organizationsRepo) GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE id = ?`, id)

	var org domain.Organization
	err := row.Scan(
		&org.ID, &org.Name, &org.Domain, &org.PlanType, &org.SubscriptionStatus,
		&org.MaxUsers, &org.MaxChatSessions, &org.MonthlyTokenLimit,
		&org.CreatedAt, &org.UpdatedAt,
	)
	if err != nil {
		return domain.Organization{}, mapNotFound(err)
	}
	return org, nil
}

func (r *organizationsRepo) CreateOrganization(ctx context.Context, org domain.Organization) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO organizations (
			id, name, domain, plan_type, subscription_status,
			max_users, max_chat_sessions, monthly_token_limit,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		org.ID, org.Name, org.Domain, org.PlanType, org.SubscriptionStatus,
		org.MaxUsers, org.MaxChatSessions, org.MonthlyTokenLimit,
		now, now,
	)
	return err
}

// UpdateSettings writes only the five editable fields. Domain and
// subscription_status never appear in the statement.
func (r *organizationsRepo) UpdateSettings(ctx context.Context, orgID string, s domain.OrganizationSettings) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE organizations
		SET name = ?, max_users = ?, max_chat_sessions = ?,
			monthly_token_limit = ?, plan_type = ?, updated_at = ?
		WHERE id = ?`,
		s.Name, s.MaxUsers, s.MaxChatSessions,
		s.MonthlyTokenLimit, s.PlanType, time.Now().UTC(),
		orgID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *organizationsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM organizations`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
