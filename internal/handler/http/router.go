package http

import (
	"log/slog"
	"os"

	"github.com/distrohub/distro-backend-go/internal/config"
	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/distrohub/distro-backend-go/internal/handler/http/middleware"
	"github.com/distrohub/distro-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth        AuthHandler
	Staff       StaffHandler
	Distributor DistributorHandler
	Damage      DamageHandler
	Inquiry     InquiryHandler
	Task        TaskHandler
	Order       OrderHandler
	Product     ProductHandler
	Dashboard   DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "distro-admin"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "x-device-id"},
		ExposedHeaders:   []string{"Link", "x-token-expires-in"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)
			r.Post("/refresh", h.Auth.RefreshToken)

			// Requires a valid access token
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/profile", h.Auth.Profile)
			})
		})

		// Requires authentication; each feature area is gated on the
		// caller's permission set.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.RequireArea(user.PermissionDashboard))
				r.Get("/summary", h.Dashboard.Summary)
			})

			r.Route("/staff", func(r chi.Router) {
				r.Use(middleware.RequireArea(user.PermissionStaff))
				r.Get("/", h.Staff.List)
				r.Get("/{id}", h.Staff.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Staff.Create)
					r.Put("/{id}", h.Staff.Update)
					r.Put("/{id}/permissions", h.Staff.UpdatePermissions)
					r.Delete("/{id}", h.Staff.Deactivate)
				})
			})

			r.Route("/distributors", func(r chi.Router) {
				r.Use(middleware.RequireArea(user.PermissionDistributors))
				r.Get("/", h.Distributor.List)
				r.Post("/", h.Distributor.Create)
				r.Get("/{id}", h.Distributor.Get)
				r.Put("/{id}", h.Distributor.Update)
				r.Delete("/{id}", h.Distributor.Delete)
				r.Get("/{id}/shops", h.Distributor.ListShops)
				r.Post("/{id}/shops", h.Distributor.CreateShop)
				r.Delete("/{id}/shops/{shopID}", h.Distributor.DeleteShop)
			})

			r.Route("/damage-claims", func(r chi.Router) {
				r.Use(middleware.RequireArea(user.PermissionDamage))
				r.Get("/", h.Damage.List)
				r.Post("/", h.Damage.Create)
				r.Get("/{id}", h.Damage.Get)
				r.Put("/{id}/resolve", h.Damage.Resolve)
				r.Post("/{id}/replacement", h.Damage.InitiateReplacement)
				r.Put("/{id}/replacement/complete", h.Damage.CompleteReplacement)
			})

			r.Route("/inquiries", func(r chi.Router) {
				r.Use(middleware.RequireArea(user.PermissionSales))
				r.Get("/", h.Inquiry.List)
				r.Post("/", h.Inquiry.Create)
				r.Get("/{id}", h.Inquiry.Get)
				r.Put("/{id}/status", h.Inquiry.UpdateStatus)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Use(middleware.RequireArea(user.PermissionTasks))
				r.Get("/", h.Task.List)
				r.Get("/my", h.Task.ListMine)
				r.Post("/", h.Task.Create)
				r.Get("/{id}", h.Task.Get)
				r.Put("/{id}/status", h.Task.UpdateStatus)
				r.Post("/{id}/check-in", h.Task.CheckIn)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Use(middleware.RequireArea(user.PermissionOrders))
				r.Get("/", h.Order.List)
				r.Post("/", h.Order.Create)
				r.Get("/{id}", h.Order.Get)
				r.Put("/{id}/status", h.Order.UpdateStatus)
			})

			r.Route("/products", func(r chi.Router) {
				r.Use(middleware.RequireArea(user.PermissionGodown))
				r.Get("/", h.Product.List)
				r.Post("/", h.Product.Create)
				r.Get("/{id}", h.Product.Get)
				r.Put("/{id}/stock", h.Product.AdjustStock)
				r.Delete("/{id}", h.Product.Deactivate)
			})
		})
	})

	return r
}
