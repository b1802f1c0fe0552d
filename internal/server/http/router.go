package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/edusupport/edusupport/internal/server/service"
	"github.com/edusupport/edusupport/internal/server/store"
	"github.com/edusupport/edusupport/pkg/httpx"
	"github.com/edusupport/edusupport/pkg/jwtx"
	"github.com/edusupport/edusupport/pkg/slogx"

	_ "github.com/edusupport/edusupport/api" // Swagger docs
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

	store          store.Store
	AuthService    *service.AuthService
	UserService    *service.UserService
	CatalogService *service.CatalogService
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
	r.registerAuth()
	r.registerUsers()
	r.registerSubjects()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			EduSupport API
//	@version		0.1.0
//	@description	Authentication and course catalog API for the EduSupport learning platform.
//	@description
//	@description				Sessions are stateless HS256 JWTs passed as bearer tokens.
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
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// Credential endpoints get strict IP rate limits to slow brute forcing.
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UserInfoHandler{UserService: r.UserService}

	secured := httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/aud/exp)
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /v1/userinfo", secured)
}

func (r *Router) registerSubjects() {
	h := &SubjectsHandler{CatalogService: r.CatalogService}

	secure := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/subjects", secure(h.HandleList))
	r.Mux.Handle("GET /v1/subjects/{slug}", secure(h.HandleDetail))
	r.Mux.Handle("GET /v1/subjects/{slug}/modules/{moduleID}", secure(h.HandleModuleContent))
	r.Mux.Handle("POST /v1/subjects/modules/{moduleID}/complete", secure(h.HandleComplete))
}

func (r *Router) registerSystem() {
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
