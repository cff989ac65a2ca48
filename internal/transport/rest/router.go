package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/harisfebriyan12/kehadiran1/internal/attendance"
	"github.com/harisfebriyan12/kehadiran1/internal/auth"
	"github.com/harisfebriyan12/kehadiran1/internal/bank"
	"github.com/harisfebriyan12/kehadiran1/internal/payroll"
	"github.com/harisfebriyan12/kehadiran1/internal/profile"
	"github.com/harisfebriyan12/kehadiran1/internal/routes"
	"github.com/harisfebriyan12/kehadiran1/internal/transport/middleware"
	"github.com/harisfebriyan12/kehadiran1/internal/transport/swagger"
)

type Handlers struct {
	Auth       *auth.Handler
	Profile    *profile.Handler
	Attendance *attendance.Handler
	Payroll    *payroll.Handler
	Bank       *bank.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, redisClient redis.UniversalClient, h Handlers, authSvc auth.ServiceAPI, roles auth.RoleResolver, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db, redisClient)
	pageHandler := NewPageHandler(logger)
	classification := routes.DefaultClassification()
	pageGuard := middleware.PageGuard(classification, authSvc, roles, logger)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Page navigations run through the route guard; the guard recomputes the
	// caller's auth state per request and redirects before any shell renders.
	router.Group(func(pg chi.Router) {
		pg.Use(pageGuard)

		pg.Get(routes.PathRoot, pageHandler.Serve("root", "Kehadiran"))
		pg.Get(routes.PathLogin, pageHandler.Serve("login", "Masuk"))
		pg.Get(routes.PathRegister, pageHandler.Serve("register", "Daftar"))

		pg.Get(routes.PathDashboard, pageHandler.Serve("dashboard", "Dashboard"))
		pg.Get(routes.PathProfileSetup, pageHandler.Serve("profile-setup", "Lengkapi Profil"))
		pg.Get(routes.PathProfileEditor, pageHandler.Serve("profile-editor", "Ubah Profil"))
		pg.Get(routes.PathHistory, pageHandler.Serve("history", "Riwayat"))

		pg.Get(routes.PathAdmin, pageHandler.Serve("admin", "Panel Admin"))
		pg.Get(routes.PathAdminUsers, pageHandler.Serve("admin-users", "Kelola Karyawan"))
		pg.Get(routes.PathAdminDepartments, pageHandler.Serve("admin-departments", "Kelola Departemen"))
		pg.Get(routes.PathAdminPositions, pageHandler.Serve("admin-positions", "Kelola Jabatan"))
		pg.Get(routes.PathAdminSalaryPayment, pageHandler.Serve("admin-salary-payment", "Pembayaran Gaji"))
		pg.Get(routes.PathAdminLocation, pageHandler.Serve("admin-location", "Kelola Lokasi"))
		pg.Get(routes.PathAdminBank, pageHandler.Serve("admin-bank", "Kelola Bank"))
		pg.Get(routes.PathAdminAttendance, pageHandler.Serve("admin-attendance", "Kehadiran Karyawan"))
	})

	// Unmatched paths follow the same policy as "/": the guard sends the
	// caller to the landing page for their state, never a bare 404.
	router.NotFound(pageGuard(pageHandler.Serve("root", "Kehadiran")).ServeHTTP)

	// Mount API under /api/v1
	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/register", h.Auth.Register)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		// Public bank directory, used by registration and profile forms
		r.Get("/banks", h.Bank.ListBanks)
		r.Get("/banks/{id}", h.Bank.GetBank)

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/profiles/me", h.Profile.GetCurrentProfile)
			pr.Patch("/profiles/me", h.Profile.UpdateCurrentProfile)

			pr.Route("/attendance", func(ar chi.Router) {
				ar.Post("/check-in", h.Attendance.CheckIn)
				ar.Post("/check-out", h.Attendance.CheckOut)
				ar.Get("/me", h.Attendance.OwnHistory)
			})

			pr.Get("/payments/me", h.Payroll.OwnHistory)

			// Admin routes
			pr.Group(func(ar chi.Router) {
				ar.Use(h.Auth.RequireAdmin)

				ar.Route("/admin", func(admin chi.Router) {
					admin.Get("/profiles", h.Profile.ListProfiles)
					admin.Get("/profiles/{id}", h.Profile.GetProfile)
					admin.Put("/profiles/{id}", h.Profile.UpdateProfile)

					admin.Post("/payments", h.Payroll.SubmitPayment)
					admin.Get("/payments", h.Payroll.ListPayments)
					admin.Get("/payments/{id}", h.Payroll.GetPayment)
					admin.Get("/payments/employee/{id}", h.Payroll.EmployeeHistory)

					admin.Get("/attendance", h.Attendance.ByDate)
				})
			})
		})
	})
}
