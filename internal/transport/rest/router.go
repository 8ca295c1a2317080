package rest

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/permit-management/internal/auth"
	"github.com/frahmantamala/permit-management/internal/department"
	"github.com/frahmantamala/permit-management/internal/permit"
	"github.com/frahmantamala/permit-management/internal/personnel"
	"github.com/frahmantamala/permit-management/internal/station"
	"github.com/frahmantamala/permit-management/internal/transport"
	"github.com/frahmantamala/permit-management/internal/transport/middleware"
	"github.com/frahmantamala/permit-management/internal/transport/swagger"
	"github.com/frahmantamala/permit-management/internal/user"
	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
)

type Handlers struct {
	Auth       *auth.Handler
	User       *user.Handler
	Department *department.Handler
	Station    *station.Handler
	Personnel  *personnel.Handler
	Permit     *permit.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sqlx.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// OpenAPI spec and swagger UI at root
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	// Original surface kept at root for existing clients
	hello := func(w http.ResponseWriter, r *http.Request) {
		base := transport.NewBaseHandler(logger)
		base.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Hello! I'm a message that came from the backend",
		})
	}
	router.Get("/hello", hello)
	router.Post("/hello", hello)
	router.Post("/create-user", h.Auth.Register)
	router.Post("/login", h.Auth.Login)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", h.Auth.Register)
			sr.Post("/login", h.Auth.Login)
		})

		// Everything below requires a valid bearer token.
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/users/me", h.User.GetCurrentUser)

			pr.Route("/departments", func(dr chi.Router) {
				dr.Post("/", h.Department.Create)
				dr.Get("/", h.Department.List)
				dr.Get("/{id}", h.Department.Get)
				dr.Patch("/{id}", h.Department.Update)
			})

			pr.Route("/markets", func(mr chi.Router) {
				mr.Post("/", h.Station.CreateMarket)
				mr.Get("/", h.Station.ListMarkets)
			})

			pr.Route("/regions", func(rr chi.Router) {
				rr.Post("/", h.Station.CreateRegion)
				rr.Get("/", h.Station.ListRegions)
			})

			pr.Route("/stations", func(sr chi.Router) {
				sr.Post("/", h.Station.CreateStation)
				sr.Get("/", h.Station.ListStations)
				sr.Get("/{id}", h.Station.GetStation)
				sr.Patch("/{id}", h.Station.UpdateStation)
				sr.Post("/{id}/contacts", h.Station.AddContact)
				sr.Get("/{id}/permits", h.Permit.ListForStation)
			})

			pr.Route("/contractors", func(cr chi.Router) {
				cr.Post("/", h.Personnel.CreateContractor)
				cr.Get("/", h.Personnel.ListContractors)
			})

			pr.Route("/people", func(ppr chi.Router) {
				ppr.Post("/", h.Personnel.CreatePerson)
				ppr.Get("/", h.Personnel.ListPeople)
				ppr.Get("/{id}", h.Personnel.GetPerson)
				ppr.Patch("/{id}", h.Personnel.UpdatePerson)
				ppr.Patch("/{id}/allow", h.Personnel.SetAllowed)
				ppr.Get("/{id}/permits", h.Permit.ListForPerson)
			})

			pr.Route("/permits", func(pmr chi.Router) {
				pmr.Post("/", h.Permit.Create)
				pmr.Get("/", h.Permit.List)
				pmr.Get("/{id}", h.Permit.Get)
				pmr.Post("/{id}/attach", h.Permit.Attach)
				pmr.Patch("/{id}/approve", h.Permit.Approve)
				pmr.Patch("/{id}/reject", h.Permit.Reject)
			})

			// Destructive and directory-wide operations need the admin role.
			pr.Group(func(ar chi.Router) {
				ar.Use(h.Auth.RequireRole("admin"))

				ar.Get("/users", h.User.List)
				ar.Patch("/users/{id}/department", h.User.AssignDepartment)
				ar.Delete("/departments/{id}", h.Department.Delete)
				ar.Delete("/markets/{id}", h.Station.DeleteMarket)
				ar.Delete("/regions/{id}", h.Station.DeleteRegion)
				ar.Delete("/stations/{id}", h.Station.DeleteStation)
				ar.Delete("/stations/{id}/contacts/{contactID}", h.Station.DeleteContact)
				ar.Delete("/contractors/{id}", h.Personnel.DeleteContractor)
				ar.Delete("/people/{id}", h.Personnel.DeletePerson)
			})
		})
	})
}
