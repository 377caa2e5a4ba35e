package api

import (
	"net/http"
	"time"

	"green_valley_api/internal/api/handler"
	"green_valley_api/internal/api/middleware"
	"green_valley_api/internal/app/service"
	"green_valley_api/internal/common/security"
	"green_valley_api/internal/platform/ratelimit"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	noticeService *service.NoticeService,
	complaintService *service.ComplaintService,
	residentService *service.ResidentService,
	staffService *service.StaffService,
	amenityService *service.AmenityService,
	contactService *service.ContactService,
	dashboardService *service.DashboardService,
	loginLimiter *ratelimit.Limiter,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies a bearer token when present and puts claims in context.
	// Enforcement happens per-route in middleware.Authenticator.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Liveness banner
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Green Valley Society API is live and healthy."))
	})

	authHandler := handler.NewAuthHandler(authService, loginLimiter)
	noticeHandler := handler.NewNoticeHandler(noticeService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	residentHandler := handler.NewResidentHandler(residentService)
	staffHandler := handler.NewStaffHandler(staffService)
	amenityHandler := handler.NewAmenityHandler(amenityService)
	contactHandler := handler.NewContactHandler(contactService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	r.Route("/api", func(api chi.Router) {
		// Auth routes (register/login public, /me authenticated)
		api.Route("/auth", authHandler.RegisterRoutes)

		// Public marketing-site data
		api.Route("/notices", noticeHandler.RegisterPublicRoutes)
		api.Route("/amenities", amenityHandler.RegisterPublicRoutes)
		api.Route("/contacts", contactHandler.RegisterPublicRoutes)

		// Resident routes (authenticated)
		api.Route("/complaints", complaintHandler.RegisterRoutes)

		// Admin routes
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.Authenticator)
			admin.Use(middleware.AdminOnly)

			admin.Route("/notices", noticeHandler.RegisterAdminRoutes)
			admin.Route("/residents", residentHandler.RegisterAdminRoutes)
			admin.Route("/staff", staffHandler.RegisterAdminRoutes)
			admin.Route("/complaints", complaintHandler.RegisterAdminRoutes)
			admin.Route("/amenities", amenityHandler.RegisterAdminRoutes)
			admin.Route("/contacts", contactHandler.RegisterAdminRoutes)
			dashboardHandler.RegisterAdminRoutes(admin)
		})
	})

	return r
}
