package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/go-chi/chi/v5/middleware"

	_ "github.com/aussiebroadwan/todo/api/todo" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	db           Pinger

	AuthService *service.AuthService
	UserService *service.UserService
	TodoService *service.TodoService
}

func NewRouter(buildVersion string, db Pinger, corsOrigins []string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		db:           db,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		middleware.Recoverer,
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSystem()
	r.registerAuth()
	r.registerUsers()
	r.registerTodos()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Todo Service API
//	@version		0.1.0
//	@description	Multi-user todo lists with signup, login and CRUD on users and todos.
//	@description
//	@description	Tokens returned by signup and login are not checked by any endpoint.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/todo
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:4000
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSystem() {
	// Health checks - public limit, monitoring may poll frequently
	r.Mux.Handle("GET /{$}",
		httpx.Chain(HealthHandler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.db),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// POST /auth/signup - strict rate limit by IP (account creation)
	r.Mux.Handle("POST /auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP + email to slow down guessing
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	r.Mux.Handle("POST /auth/signout",
		httpx.Chain(http.HandlerFunc(h.HandleSignout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// Reads share the lenient limit with todos, writes are moderate
	r.Mux.Handle("POST /users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerTodos() {
	h := &TodosHandler{TodoService: r.TodoService}

	// One lenient bucket per IP shared by every todo route
	lenient := httpx.RateLimitByIP(httpx.LenientLimit)

	r.Mux.Handle("POST /todos", httpx.Chain(http.HandlerFunc(h.HandleCreate), lenient))
	r.Mux.Handle("GET /todos/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), lenient))
	r.Mux.Handle("GET /todos/user/{userId}", httpx.Chain(http.HandlerFunc(h.HandleListByUser), lenient))
	r.Mux.Handle("PUT /todos/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), lenient))
	r.Mux.Handle("PATCH /todos/{id}/toggle", httpx.Chain(http.HandlerFunc(h.HandleToggle), lenient))
	r.Mux.Handle("DELETE /todos/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), lenient))
}
