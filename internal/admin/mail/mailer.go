// Package mail delivers invitation emails. Delivery is best-effort: a
// failed send never fails the invitation itself.
package mail

import (
	"context"
	"log/slog"
)

// Invite is the payload rendered into the invitation email.
type Invite struct {
	To        string
	OrgName   string
	InviteURL string
}

// Mailer sends invitation emails. The SMTP implementation is used when the
// server is configured; LogMailer otherwise.
type Mailer interface {
	SendInvite(ctx context.Context, inv Invite) error
}

// LogMailer logs instead of sending. Used in dev and whenever SMTP is not
// configured, so invite links still reach the operator via logs.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) SendInvite(ctx context.Context, inv Invite) error {
	m.Logger.Info("invite email suppressed (smtp not configured)",
		"to", inv.To,
		"org", inv.OrgName,
		"invite_url", inv.InviteURL,
	)
	return nil
}
