package domain

import "time"

type MemberRole string

const (
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

type MemberStatus string

const (
	MemberInvited   MemberStatus = "invited"
	MemberPending   MemberStatus = "pending"
	MemberActive    MemberStatus = "active"
	MemberSuspended MemberStatus = "suspended"
)

// Member is a person's account record. OrgID is nil once the member has
// been removed from their organization; the row itself is never deleted so
// history survives.
type Member struct {
	ID             string
	Email          string
	FullName       string
	Role           MemberRole
	Status         MemberStatus
	OrgID          *string
	CreatedAt      time.Time
	LastActivityAt *time.Time
	UpdatedAt      time.Time
}

// Removed reports whether the member has been severed from their
// organization.
func (m Member) Removed() bool { return m.OrgID == nil }

// CanSuspend reports whether a member in this status may transition to
// suspended. Suspension is the only member transition this service exposes
// and it is one-way.
func (s MemberStatus) CanSuspend() bool {
	switch s {
	case MemberInvited, MemberPending, MemberActive:
		return true
	default:
		return false
	}
}

// Valid reports whether s is a known member status.
func (s MemberStatus) Valid() bool {
	switch s {
	case MemberInvited, MemberPending, MemberActive, MemberSuspended:
		return true
	}
	return false
}
