package httpx

import "context"

type ctxKey string

const (
	// CtxKeyMemberID is the authenticated caller's member id (token subject).
	CtxKeyMemberID ctxKey = "member_id"

	// CtxKeyOrgID is the caller's organization id.
	CtxKeyOrgID ctxKey = "org_id"

	// CtxKeyScopes holds the caller's granted scopes.
	CtxKeyScopes ctxKey = "scopes"

	// CtxKeyClaims holds the full jwtx.Claims when a handler needs more.
	CtxKeyClaims ctxKey = "claims"
)

// MemberID returns the authenticated member id, or "" when unauthenticated.
func MemberID(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyMemberID).(string); ok {
		return v
	}
	return ""
}

// OrgID returns the caller's organization id, or "" when unauthenticated.
func OrgID(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyOrgID).(string); ok {
		return v
	}
	return ""
}

func scopesFromCtx(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyScopes).([]string); ok {
		return v
	}
	return nil
}
