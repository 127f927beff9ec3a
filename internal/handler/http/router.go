package http

import (
	"log/slog"

	"github.com/cmlabs-hris/staff-leave-backend/internal/handler/http/middleware"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, adminHandler AdminHandler, staffHandler StaffHandler, leaveHandler LeaveHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  opts.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/admin/auth/login", adminHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/admin", func(r chi.Router) {
				r.Post("/auth/logout", adminHandler.Logout)

				r.Route("/profile", func(r chi.Router) {
					r.Get("/", adminHandler.GetProfile)
					r.Patch("/", adminHandler.UpdateProfile)
				})

				r.Route("/manage", func(r chi.Router) {
					r.Get("/", adminHandler.List)
					r.Post("/", adminHandler.Create)
					r.Get("/{id}", adminHandler.Get)
					r.Patch("/{id}", adminHandler.Update)
					r.Delete("/{id}", adminHandler.Delete)
				})
			})

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", staffHandler.List)
				r.Post("/", staffHandler.Create)
				r.Get("/{id}", staffHandler.Get)
				r.Patch("/{id}", staffHandler.Update)
				r.Delete("/{id}", staffHandler.Delete)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/", leaveHandler.List)
				r.Post("/", leaveHandler.Create)
				r.Get("/staff-on-leave", leaveHandler.ListStaffOnLeave)
				r.Get("/staff/{staffID}/quota", leaveHandler.GetQuota)
				r.Get("/{id}", leaveHandler.Get)
				r.Patch("/{id}", leaveHandler.Update)
				r.Delete("/{id}", leaveHandler.Delete)
			})
		})
	})
	return r
}
