package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rentlinkhq/rentlink/internal/rental/service"
	"github.com/rentlinkhq/rentlink/internal/rental/store"
	"github.com/rentlinkhq/rentlink/pkg/httpx"
	"github.com/rentlinkhq/rentlink/pkg/jwtx"
	"github.com/rentlinkhq/rentlink/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store              store.Store
	UserService        *service.UserService
	PropertyService    *service.PropertyService
	UnitService        *service.UnitService
	InviteService      *service.InviteService
	PaymentService     *service.PaymentService
	MaintenanceService *service.MaintenanceService
	MessageService     *service.MessageService
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

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerProfile()
	r.registerProperties()
	r.registerUnits()
	r.registerInvitations()
	r.registerPayments()
	r.registerMaintenance()
	r.registerMessages()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			RentLink API
//	@version		0.1.0
//	@description	Property rental management service covering landlord and tenant
//	@description	profiles, properties and units, tenant invitations, rent payments,
//	@description	maintenance requests and messaging.
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

// secured wraps a handler with bearer authentication and a per-subject
// rate limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitBySubject(limit),
	)
}

func (r *Router) registerProfile() {
	profile := &ProfileHandler{UserService: r.UserService}
	users := &UsersHandler{UserService: r.UserService}
	tenants := &TenantsHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/profile", r.secured(http.HandlerFunc(profile.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/profile", r.secured(http.HandlerFunc(profile.HandleSave), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/profile/settings", r.secured(http.HandlerFunc(profile.HandleSettings), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/profile/photo", r.secured(http.HandlerFunc(profile.HandlePhoto), httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/users/{id}", r.secured(http.HandlerFunc(users.HandleGet), httpx.LenientLimit))

	r.Mux.Handle("GET /v1/tenants", r.secured(http.HandlerFunc(tenants.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/tenants/available", r.secured(http.HandlerFunc(tenants.HandleListAvailable), httpx.LenientLimit))
}

func (r *Router) registerProperties() {
	h := &PropertiesHandler{PropertyService: r.PropertyService, UserService: r.UserService}

	r.Mux.Handle("POST /v1/properties", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/properties", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/properties/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/properties/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/properties/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerUnits() {
	h := &UnitsHandler{UnitService: r.UnitService, UserService: r.UserService}

	r.Mux.Handle("POST /v1/properties/{id}/units", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/properties/{id}/units", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/units/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/units/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))

	// Occupancy transitions share the moderate limit with the other
	// mutating endpoints.
	r.Mux.Handle("POST /v1/units/{id}/assign", r.secured(http.HandlerFunc(h.HandleAssign), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/units/{id}/remove-tenant", r.secured(http.HandlerFunc(h.HandleRemoveTenant), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/units/{id}/maintenance", r.secured(http.HandlerFunc(h.HandleSetMaintenance), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/units/{id}/available", r.secured(http.HandlerFunc(h.HandleSetAvailable), httpx.ModerateLimit))
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{InviteService: r.InviteService, UserService: r.UserService}

	r.Mux.Handle("POST /v1/invitations", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/invitations", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/invitations/{id}/cancel", r.secured(http.HandlerFunc(h.HandleCancel), httpx.ModerateLimit))

	// Accept attempts are strictly limited: invitation ids are guessable
	// enough that probing for someone else's invitation must stay slow.
	r.Mux.Handle("POST /v1/invitations/{id}/accept", r.secured(http.HandlerFunc(h.HandleAccept), httpx.StrictLimit))
}

func (r *Router) registerPayments() {
	h := &PaymentsHandler{PaymentService: r.PaymentService, UserService: r.UserService}

	r.Mux.Handle("POST /v1/payments", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/payments", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/payments/{id}/paid", r.secured(http.HandlerFunc(h.HandleMarkPaid), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/payments/{id}/verify", r.secured(http.HandlerFunc(h.HandleVerify), httpx.ModerateLimit))
}

func (r *Router) registerMaintenance() {
	h := &MaintenanceHandler{MaintenanceService: r.MaintenanceService, UserService: r.UserService}

	r.Mux.Handle("POST /v1/maintenance", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/maintenance", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/maintenance/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
}

func (r *Router) registerMessages() {
	h := &MessagesHandler{MessageService: r.MessageService, UserService: r.UserService}

	r.Mux.Handle("POST /v1/messages", r.secured(http.HandlerFunc(h.HandleSend), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/messages", r.secured(http.HandlerFunc(h.HandleConversation), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/messages/{id}/read", r.secured(http.HandlerFunc(h.HandleMarkRead), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health probes are unauthenticated and limited by IP.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
