package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vgu-mess/mess-portal/internal/api/http/handlers"
	"github.com/vgu-mess/mess-portal/internal/auth"
	"github.com/vgu-mess/mess-portal/internal/observability"
)

// NewApp builds the fiber app. Bound request values are stored in the user
// store and sessions after the handler returns, so they must not alias
// fasthttp's reused buffers.
func NewApp(name string, bodyLimit int) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:   name,
		BodyLimit: bodyLimit,
		Immutable: true,
	})
}

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Profile *handlers.ProfileHandler
	Menu    *handlers.MenuHandler
	Reviews *handlers.ReviewHandler
	Session *auth.SessionMiddleware
	Metrics *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Probes and metrics are registered ahead
// of the session middleware so they never mint sessions.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	app.Use(cfg.Session.Handle)

	app.Get("/session", cfg.Auth.Session)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.SignUp)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", auth.RequireAuthenticated(), cfg.Auth.Logout)

	profile := app.Group("/profile", auth.RequireAuthenticated())
	profile.Get("", cfg.Profile.Get)
	profile.Put("", cfg.Profile.Update)
	profile.Get("/picture", cfg.Profile.Picture)

	menu := app.Group("/menu", auth.RequireAuthenticated())
	menu.Get("", cfg.Menu.Current)
	menu.Put("/day", cfg.Menu.SelectDay)
	menu.Get("/week", cfg.Menu.Week)
	menu.Get("/:day", cfg.Menu.Day)

	reviews := app.Group("/reviews", auth.RequireAuthenticated())
	reviews.Post("", cfg.Reviews.Submit)
	reviews.Get("", cfg.Reviews.Summary)
}
