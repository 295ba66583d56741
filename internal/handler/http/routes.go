package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router. The middleware order is: real IP, trace id,
// access log, panic recovery, metrics, CORS, compression, request timeout.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecover)
	if h.metrics != nil {
		router.Use(h.metrics.Middleware)
	}
	router.Use(cors.Handler(corsOptions(h.cfg.AllowedOrigins())))
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(withTimeout(h.cfg.RequestTimeout))
	}

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/", h.status)
		r.Get("/api/testdb", h.testDB)
		r.Post("/api/ping", h.ping)
		r.Get("/api/init-db", h.initDB)
		r.Get("/setup-db", h.initDB)

		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Get("/api/settings", h.listSettings)

		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		}
	})

	// dashboard API, open unless API_REQUIRE_AUTH is set
	router.Group(func(r chi.Router) {
		r.Use(h.authIf(h.cfg.APIRequireAuth))

		r.Get("/api/users", h.listUsers)
		r.Post("/api/users", h.createUser)
		r.Post("/api/settings", h.upsertSetting)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.listUsers)
		r.Post("/users", h.createUser)
		r.Put("/users/{id}", h.updateUser)
		r.Delete("/users/{id}", h.deleteUser)
		r.Get("/stats", h.stats)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// corsOptions allows any origin for "*" and otherwise only the listed ones.
// Credentials are only allowed with an explicit allow-list.
func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		opts.AllowedOrigins = []string{"*"}
		return opts
	}

	opts.AllowedOrigins = origins
	opts.AllowCredentials = true
	return opts
}
