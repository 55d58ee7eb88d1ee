package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Absence      AbsenceHandler
	Approval     ApprovalHandler
	AbsenceType  AbsenceTypeHandler
	Vacation     VacationHandler
	Notification NotificationHandler
	Audit        AuditHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	LogBodies      bool
	AllowedOrigins []string
	UploadDir      string // served read-only under /uploads/ when set
}

func NewRouter(jwtService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:             opts.LogLevel,
		Schema:            httplog.SchemaECS,
		LogRequestHeaders: requestHeadersToLog(opts.LogBodies),
		LogRequestBody:    func(*http.Request) bool { return opts.LogBodies },
	}))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.StripSlashes)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	if opts.UploadDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			response.Success(w, map[string]string{"status": "ok"})
		})

		// EventSource clients cannot set headers, so the stream also reads ?jwt=
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(jwtService.JWTAuth(), jwtauth.TokenFromHeader, jwtauth.TokenFromQuery))
			r.Use(middleware.AuthRequired)
			r.Use(middleware.ResolveScope)
			r.Use(middleware.RequirePermission(user.PermissionNotificationRead))

			r.Get("/notifications/stream", h.Notification.Stream)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)
			r.Use(middleware.ResolveScope)

			r.Route("/absences", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAbsenceSelf))

				r.Get("/types", h.Absence.ListTypes)
				r.Route("/requests", func(r chi.Router) {
					r.Get("/", h.Absence.ListOwn)
					r.Post("/", h.Absence.Submit)
					r.Route("/{id:[0-9]+}", func(r chi.Router) {
						r.Get("/", h.Absence.GetOwn)
						r.Put("/", h.Absence.Edit)
						r.Patch("/", h.Absence.Cancel)
						r.Patch("/cancel", h.Absence.Cancel)
						r.Post("/attachment", h.Absence.UploadAttachment)
					})
				})
			})

			r.Route("/manager/absences", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAbsenceDecideTeam))

				r.Get("/requests", h.Approval.ManagerPending)
				r.Get("/requests/{id:[0-9]+}", h.Approval.Detail)
				r.Patch("/requests/{id:[0-9]+}/decide", h.Approval.ManagerDecide)
				r.Get("/approvals", h.Approval.Decisions)
			})

			r.Route("/rrhh", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAbsenceDecideTenant))

					r.Get("/absences/requests", h.Approval.HRPending)
					r.Get("/absences/requests/{id:[0-9]+}", h.Approval.Detail)
					r.Patch("/absences/requests/{id:[0-9]+}/decidir", h.Approval.HRDecide)
					r.Get("/absences/approvals", h.Approval.Decisions)
				})

				r.Route("/absence-types", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAbsenceTypeManage))

					r.Get("/", h.AbsenceType.List)
					r.Post("/", h.AbsenceType.Create)
					r.Get("/{id:[0-9]+}", h.AbsenceType.Get)
					r.Put("/{id:[0-9]+}", h.AbsenceType.Update)
					r.Delete("/{id:[0-9]+}", h.AbsenceType.Delete)
				})

				r.Route("/vacation-balances", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionVacationManage))

					r.Get("/", h.Vacation.List)
					r.Post("/", h.Vacation.Create)
					r.Get("/employees", h.Vacation.ListEmployees)
					r.Patch("/{id:[0-9]+}", h.Vacation.RenamePeriod)
					r.Delete("/{id:[0-9]+}", h.Vacation.Delete)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionNotificationRead))

				r.Get("/", h.Notification.List)
				r.Patch("/read-all", h.Notification.MarkAllAsRead)
				r.Patch("/{id:[0-9]+}/read", h.Notification.MarkAsRead)
			})

			r.Route("/auditor", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAuditRead))

				r.Get("/absences/requests", h.Audit.Requests)
				r.Get("/absences/approvals", h.Audit.Decisions)
				r.Get("/vacation-balances", h.Audit.Balances)
			})
		})
	})
	return r
}

func requestHeadersToLog(enabled bool) []string {
	if !enabled {
		return nil
	}
	return []string{"Origin", "User-Agent", "Content-Type"}
}
