// Package orgsdk is a typed Go client for the orgdesk organization
// administration API. It covers the authenticated admin surface
// (organization settings, members, invitations, usage) and the public
// endpoints (invitation redemption, bootstrap, health).
//
// Authenticated calls carry a Bearer access token issued by the external
// identity provider; the SDK never mints or refreshes tokens itself.
//
// List operations come in two flavours: the plain form degrades to an
// empty slice on any failure, which is the behaviour admin dashboards
// want, while the Strict form returns the error.
package orgsdk
