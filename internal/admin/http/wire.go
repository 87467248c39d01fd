package http

import (
	"github.com/orgdeskhq/orgdesk/internal/admin/domain"
	"github.com/orgdeskhq/orgdesk/internal/admin/service"
	"github.com/orgdeskhq/orgdesk/pkg/orgsdk"
)

func toWireOrganization(o domain.Organization) orgsdk.Organization {
	return orgsdk.Organization{
		ID:                 o.ID,
		Name:               o.Name,
		Domain:             o.Domain,
		PlanType:           o.PlanType,
		SubscriptionStatus: o.SubscriptionStatus,
		MaxUsers:           o.MaxUsers,
		MaxChatSessions:    o.MaxChatSessions,
		MonthlyTokenLimit:  o.MonthlyTokenLimit,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func toWireMember(m domain.Member) orgsdk.Member {
	out := orgsdk.Member{
		ID:             m.ID,
		Email:          m.Email,
		FullName:       m.FullName,
		Role:           string(m.Role),
		Status:         string(m.Status),
		CreatedAt:      m.CreatedAt,
		LastActivityAt: m.LastActivityAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.OrgID != nil {
		out.OrganizationID = *m.OrgID
	}
	return out
}

func toWireMembers(members []domain.Member) []orgsdk.Member {
	out := make([]orgsdk.Member, 0, len(members))
	for _, m := range members {
		out = append(out, toWireMember(m))
	}
	return out
}

func toWireInvitation(inv domain.Invitation) orgsdk.Invitation {
	return orgsdk.Invitation{
		ID:             inv.ID,
		Email:          inv.Email,
		OrganizationID: inv.OrgID,
		InvitedBy:      inv.InvitedBy,
		Status:         string(inv.Status),
		CreatedAt:      inv.CreatedAt,
		ExpiresAt:      inv.ExpiresAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}

func toWireInvitations(invitations []domain.Invitation) []orgsdk.Invitation {
	out := make([]orgsdk.Invitation, 0, len(invitations))
	for _, inv := range invitations {
		out = append(out, toWireInvitation(inv))
	}
	return out
}

func toWireUsage(s service.UsageSnapshot) orgsdk.UsageResponse {
	metric := func(m service.UsageMetric) orgsdk.UsageMetric {
		return orgsdk.UsageMetric{
			Used:    m.Used,
			Limit:   m.Limit,
			Percent: m.Percent,
			Band:    string(m.Band),
		}
	}
	return orgsdk.UsageResponse{
		Users:        metric(s.Users),
		ChatSessions: metric(s.ChatSessions),
		Tokens:       metric(s.Tokens),
	}
}
