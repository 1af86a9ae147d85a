package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/fitness-tracker/internal/api/http/handlers"
	"github.com/spec-kit/fitness-tracker/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Exercises      *handlers.ExercisesHandler
	Workouts       *handlers.WorkoutsHandler
	Activities     *handlers.ActivitiesHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.AuthMiddleware
	LoginLimiter   *LoginRateLimiter
	MetricsHandler nethttp.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.MetricsHandler))
	}

	app.Post("/auth/signup", cfg.Auth.Signup)
	if cfg.LoginLimiter != nil {
		app.Post("/token", cfg.LoginLimiter.Handle, cfg.Auth.Login)
		app.Post("/auth/login", cfg.LoginLimiter.Handle, cfg.Auth.Login)
	} else {
		app.Post("/token", cfg.Auth.Login)
		app.Post("/auth/login", cfg.Auth.Login)
	}

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	protected.Get("/users/me", cfg.Users.Me)

	exercises := protected.Group("/exercises")
	exercises.Post("/", cfg.Exercises.Log)
	exercises.Get("/", auth.RequireAdmin(), cfg.Exercises.ListAll)
	exercises.Get("/mine", cfg.Exercises.ListMine)
	exercises.Get("/:id", cfg.Exercises.Get)
	exercises.Put("/:id", cfg.Exercises.Update)
	exercises.Delete("/:id", cfg.Exercises.Delete)

	workouts := protected.Group("/workouts")
	workouts.Post("/", cfg.Workouts.Log)
	workouts.Get("/", cfg.Workouts.List)
	workouts.Get("/:id", cfg.Workouts.Get)
	workouts.Put("/:id", cfg.Workouts.Update)
	workouts.Delete("/:id", cfg.Workouts.Delete)

	activities := protected.Group("/activities")
	activities.Post("/", cfg.Activities.Create)
	activities.Get("/", cfg.Activities.List)
	activities.Get("/:id", cfg.Activities.Get)
	activities.Put("/:id", cfg.Activities.Update)
	activities.Delete("/:id", cfg.Activities.Delete)

	reports := protected.Group("/reports")
	reports.Get("/workout-summary", cfg.Reports.Summary)
	reports.Get("/progress-chart", cfg.Reports.ProgressChart)
}
