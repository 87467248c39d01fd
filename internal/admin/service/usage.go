package service

import (
	"context"
	"errors"

	"github.com/orgdeskhq/orgdesk/internal/admin/store"
)

// UsageBand classifies how close a metric is to its plan limit.
type UsageBand string

const (
	BandOK       UsageBand = "ok"       // below 70%
	BandWarning  UsageBand = "warning"  // 70% to below 90%
	BandCritical UsageBand = "critical" // 90% and above
)

// UsageMetric is one limit-tracked quantity with its derived presentation
// values.
type UsageMetric struct {
	Used    int64     `json:"used"`
	Limit   int64     `json:"limit"`
	Percent float64   `json:"percent"`
	Band    UsageBand `json:"band"`
}

// UsageSnapshot is the full usage panel for one organization.
type UsageSnapshot struct {
	Users        UsageMetric `json:"users"`
	ChatSessions UsageMetric `json:"chat_sessions"`
	Tokens       UsageMetric `json:"tokens"`
}

// UsagePercent returns the consumed share of a limit as a percentage,
// capped at 100. A zero or negative limit reports 0 rather than dividing.
func UsagePercent(used, limit int64) float64 {
	if limit <= 0 {
		return 0
	}
	pct := float64(used) / float64(limit) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// BandFor maps a percentage to its color band. Boundaries are inclusive
// on the upper side: exactly 70 is warning, exactly 90 is critical.
func BandFor(pct float64) UsageBand {
	switch {
	case pct >= 90:
		return BandCritical
	case pct >= 70:
		return BandWarning
	default:
		return BandOK
	}
}

func metricFor(used, limit int64) UsageMetric {
	pct := UsagePercent(used, limit)
	return UsageMetric{Used: used, Limit: limit, Percent: pct, Band: BandFor(pct)}
}

// UsageService computes plan-limit consumption for an organization.
// Chat session and token counters live in the chat backend; until that
// feed exists they report zero usage against the configured limits.
type UsageService struct {
	Store store.Store
}

func (s *UsageService) Snapshot(ctx context.Context, orgID string) (UsageSnapshot, error) {
	org, err := s.Store.Organizations().GetOrganizationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return UsageSnapshot{}, ErrOrganizationNotFound
		}
		return UsageSnapshot{}, err
	}

	activeMembers, err := s.Store.Members().CountActiveMembers(ctx, orgID)
	if err != nil {
		return UsageSnapshot{}, err
	}

	return UsageSnapshot{
		Users:        metricFor(activeMembers, org.MaxUsers),
		ChatSessions: metricFor(0, org.MaxChatSessions),
		Tokens:       metricFor(0, org.MonthlyTokenLimit),
	}, nil
}
