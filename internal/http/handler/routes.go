package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"bizreview/internal/http/middleware"
	"bizreview/internal/service"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	DB         *sql.DB
	Businesses service.BusinessService
	Reviews    service.ReviewService
	// Verifier guards the write routes and /decode. Nil leaves writes open.
	Verifier middleware.TokenVerifier
	Links    Links
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	requireJWT := middleware.RequireJWT(d.Verifier)

	app.Get("/", Index())
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	app.Post("/businesses", requireJWT, CreateBusiness(d.Businesses, d.Links))
	app.Get("/businesses", ListBusinesses(d.Businesses, d.Links))
	app.Get("/businesses/:id", GetBusiness(d.Businesses, d.Links))
	app.Put("/businesses/:id", requireJWT, UpdateBusiness(d.Businesses, d.Links))
	app.Delete("/businesses/:id", requireJWT, DeleteBusiness(d.Businesses))
	app.Get("/owners/:owner_id/businesses", ListOwnerBusinesses(d.Businesses, d.Links))

	app.Post("/reviews", requireJWT, CreateReview(d.Reviews, d.Links))
	app.Get("/reviews/:id", GetReview(d.Reviews, d.Links))
	app.Put("/reviews/:id", requireJWT, UpdateReview(d.Reviews, d.Links))
	app.Delete("/reviews/:id", requireJWT, DeleteReview(d.Reviews))
	app.Get("/users/:user_id/reviews", ListUserReviews(d.Reviews, d.Links))

	app.Get("/decode", requireJWT, Decode())
}
