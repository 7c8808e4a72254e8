package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/employee-records/internal/auth"
	"github.com/frahmantamala/employee-records/internal/employee"
	"github.com/frahmantamala/employee-records/internal/transport/middleware"
	"github.com/frahmantamala/employee-records/internal/transport/swagger"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes wires the route table. Every route under /api except
// register, login and health sits behind the auth middleware. No
// role-based restriction exists beyond that: any authenticated user may
// mutate employee records.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, employeeHandler *employee.Handler, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "endpoint not found"}`))
	})

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/", employeeHandler.List)
				er.Post("/", employeeHandler.Create)
				er.Get("/{id}", employeeHandler.Get)
				er.Put("/{id}", employeeHandler.Update)
				er.Delete("/{id}", employeeHandler.Delete)
			})

			pr.Get("/statistics", employeeHandler.Statistics)
		})
	})
}
