package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/techbridge-it/perfnote-backend-go/internal/config"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/handler/http/middleware"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth      AuthHandler
	Account   AccountHandler
	Team      TeamHandler
	Employee  EmployeeHandler
	Note      NoteHandler
	Tag       TagHandler
	Activity  ActivityHandler
	Dashboard DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, accountRepo account.AccountRepository, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "perfnote-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/reset-password", h.Auth.ResetPassword)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Reachable while a forced reset is pending.
			r.Post("/auth/change-password", h.Auth.ChangePassword)

			r.Group(func(r chi.Router) {
				r.Use(middleware.ForcedResetGuard(accountRepo))

				// Administrative roles only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdministrative)

					r.Route("/users", func(r chi.Router) {
						r.Get("/", h.Account.List)
						r.Post("/", h.Account.Create)
						r.Get("/{id}", h.Account.Get)
						r.Put("/{id}", h.Account.Update)
						r.Patch("/{id}/role", h.Account.UpdateRole)
						r.Patch("/{id}/status", h.Account.UpdateStatus)
						r.Post("/{id}/force-reset", h.Auth.ForceReset)
						r.Delete("/{id}", h.Account.Delete)
					})

					r.Route("/teams", func(r chi.Router) {
						r.Get("/managers", h.Team.Managers)
						r.Get("/managers/{managerID}", h.Team.TeamOf)
						r.Get("/unassigned", h.Team.Unassigned)
						r.Post("/assign", h.Team.Assign)
						r.Post("/unassign", h.Team.Unassign)
					})

					r.Post("/employees", h.Employee.Create)
					r.Post("/employees/import", h.Employee.Import)
					r.Delete("/employees/{id}", h.Employee.Deactivate)
					r.Get("/employees/with-managers", h.Employee.ListWithManagers)

					r.Get("/dashboard/stats", h.Dashboard.Stats)
				})

				r.Get("/employees", h.Employee.List)

				r.Route("/notes", func(r chi.Router) {
					// Note authorship is limited to top roles and managers;
					// the service narrows managers to their own team.
					r.With(middleware.RequireRoles(account.RoleCEO, account.RoleManager)).
						Post("/", h.Note.Create)

					r.Get("/", h.Note.List)
					r.Get("/years", h.Note.Years)
					r.Put("/{id}", h.Note.Update)
					r.Delete("/{id}", h.Note.Delete)
				})

				r.Route("/employees/{employeeID}", func(r chi.Router) {
					r.Get("/timeline", h.Note.Timeline)
					r.Get("/export", h.Note.Export)
					r.Get("/tags", h.Tag.ListForEmployee)
					r.With(middleware.RequireRoles(account.RoleCEO, account.RoleManager)).
						Post("/tags", h.Tag.Add)
				})

				r.Delete("/tags/{id}", h.Tag.Delete)

				r.Route("/activity-logs", func(r chi.Router) {
					r.Use(middleware.RequireRoles(account.RoleAdmin, account.RoleCEO, account.RoleManager))
					r.Get("/", h.Activity.List)
					r.Put("/{id}", h.Activity.Update)
					r.Delete("/{id}", h.Activity.Delete)
				})
			})
		})
	})

	return r
}
