package domain

import "time"

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationExpired  InvitationStatus = "expired"
)

// Invitation is a pending offer of membership. The id doubles as the
// redemption token carried in the invite link, so it is minted from
// crypto/rand entropy and immutable once issued.
type Invitation struct {
	ID        string
	Email     string
	OrgID     string
	InvitedBy string
	Status    InvitationStatus
	CreatedAt time.Time
	ExpiresAt time.Time
	UpdatedAt time.Time
}

// CanTransition encodes the invitation state machine: pending may become
// accepted (redemption) or expired (cancel, or overdue housekeeping).
// Accepted and expired are terminal.
func (s InvitationStatus) CanTransition(to InvitationStatus) bool {
	if s != InvitationPending {
		return false
	}
	return to == InvitationAccepted || to == InvitationExpired
}

// Overdue reports whether the invitation has passed its expiry instant.
func (inv Invitation) Overdue(now time.Time) bool {
	return now.After(inv.ExpiresAt)
}
