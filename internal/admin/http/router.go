package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/orgdeskhq/orgdesk/internal/admin/service"
	"github.com/orgdeskhq/orgdesk/internal/admin/store"
	"github.com/orgdeskhq/orgdesk/pkg/httpx"
	"github.com/orgdeskhq/orgdesk/pkg/jwtx"
	"github.com/orgdeskhq/orgdesk/pkg/slogx"

	_ "github.com/orgdeskhq/orgdesk/api/orgdesk" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	OrganizationService *service.OrganizationService
	MemberService       *service.MemberService
	InvitationService   *service.InvitationService
	UsageService        *service.UsageService
	BootstrapService    *service.BootstrapService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerOrganization()
	r.registerMembers()
	r.registerInvitations()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			OrgDesk Organization Administration API
//	@version		0.1.0
//	@description	Organization membership, invitations, and plan usage for the admin dashboard.
//	@description
//	@description				Access tokens are issued by the external identity provider and verified
//	@description				here with the provider's EdDSA public key. Admin endpoints require the
//	@description				admin:read or admin:write scope.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerOrganization() {
	h := &OrganizationHandler{OrganizationService: r.OrganizationService}
	usage := &UsageHandler{UsageService: r.UsageService}

	r.Mux.Handle("GET /v1/org",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:read", "admin:write"),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("PATCH /v1/org/settings",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateSettings),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:write"),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/org/usage",
		httpx.Chain(usage,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:read", "admin:write"),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerMembers() {
	h := &MembersHandler{MemberService: r.MemberService}

	r.Mux.Handle("GET /v1/org/members",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:read", "admin:write"),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/org/members/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleRemove),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:write"),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{InvitationService: r.InvitationService}
	redeem := &RedeemHandler{InvitationService: r.InvitationService}

	r.Mux.Handle("GET /v1/org/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:read", "admin:write"),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("POST /v1/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleSend),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:write"),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /v1/org/invitations/{id}/cancel",
		httpx.Chain(http.HandlerFunc(h.HandleCancel),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:write"),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/org/invitations/{id}/link",
		httpx.Chain(http.HandlerFunc(h.HandleLink),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:read", "admin:write"),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)

	// Public signup path: redemption is authenticated by the invitation id
	// itself, so it gets the strict IP limit instead.
	r.Mux.Handle("POST /v1/invitations/redeem",
		httpx.Chain(redeem,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}

	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
