package http

import (
	"log/slog"
	"net/http"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/user"
	"github.com/YossiBuhnik/WorkLog1/internal/handler/http/middleware"
	"github.com/YossiBuhnik/WorkLog1/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups the HTTP handlers mounted under /api/v1.
type Handlers struct {
	Auth         AuthHandler
	User         UserHandler
	Request      RequestHandler
	Report       ReportHandler
	Dashboard    DashboardHandler
	Workday      WorkdayHandler
	Notification NotificationHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/google", func(r chi.Router) {
				r.Get("/", h.Auth.LoginWithGoogle)
				r.Get("/callback", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.User.Me)
				r.Put("/me", h.User.UpdateMe)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionUserManage))
					r.Get("/", h.User.List)
					r.Post("/", h.User.Create)
					r.Get("/{id}", h.User.Get)
					r.Put("/{id}", h.User.Update)
					r.Delete("/{id}", h.User.Delete)
					r.Put("/{id}/roles", h.User.UpdateRoles)
				})
			})

			r.Route("/requests", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionRequestCreate)).Post("/", h.Request.Create)
				r.Get("/mine", h.Request.ListMine)
				r.With(middleware.RequirePermission(user.PermissionRequestViewAll)).Get("/", h.Request.ListAll)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionRequestApprove))
					r.Get("/managed", h.Request.ListManaged)
					r.Get("/pending", h.Request.ListPending)
					r.Post("/{id}/approve", h.Request.Approve)
					r.Post("/{id}/reject", h.Request.Reject)
				})

				r.Get("/{id}", h.Request.Get)
				r.Post("/{id}/cancel", h.Request.Cancel)
			})

			r.With(middleware.RequireManager).Get("/schedule", h.Request.Schedule)

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReportsView))
				r.Get("/employees", h.Report.GetEmployeeReport)
				r.Get("/employees/vacation-tally", h.Report.GetVacationTally)
				r.Get("/employees/export", h.Report.ExportEmployeeReport)
			})

			r.With(middleware.RequireOffice).Get("/dashboard/office", h.Dashboard.GetOfficeDashboard)

			r.Get("/workdays", h.Workday.CountWorkdays)

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Workday.ListHolidays)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionHolidayManage))
					r.Post("/", h.Workday.CreateHoliday)
					r.Delete("/{id}", h.Workday.DeleteHoliday)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Patch("/read", h.Notification.MarkAsRead)
				r.Patch("/read-all", h.Notification.MarkAllAsRead)
				r.Patch("/{id}/read", h.Notification.MarkOneAsRead)
				r.Delete("/{id}", h.Notification.Delete)
				r.Get("/preferences", h.Notification.GetPreferences)
				r.Put("/preferences", h.Notification.UpdatePreference)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	return r
}
