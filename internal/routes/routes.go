package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/lock"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAccount "github.com/BruksfildServices01/barber-booking/internal/usecase/account"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	ucGallery "github.com/BruksfildServices01/barber-booking/internal/usecase/gallery"
	ucReview "github.com/BruksfildServices01/barber-booking/internal/usecase/review"
	ucSchedule "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
)

// Deps are the process-wide singletons the routes are built from.
type Deps struct {
	Cfg     *config.Config
	Repo    domain.Repository
	Locker  lock.SlotLocker
	Audit   audit.Recorder
	Storage storage.Storage
	Health  map[string]handlers.Pinger
	Log     *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Cfg

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	tokens := auth.NewTokens(cfg.JWTSecret)
	provider := auth.NewOAuthProvider(cfg.OAuth)
	loc := timezone.Location(cfg.ShopTimezone)
	policy := domain.OccupancyPolicy{ReleaseCancelled: cfg.ReleaseCancelledSlots}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.Recovery(d.Log),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.Authenticate(tokens, d.Repo),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	listServicesUC := ucBooking.NewListServices(d.Repo)
	slotsUC := ucBooking.NewGetAvailableSlots(d.Repo, policy, d.Log)
	createBookingUC := ucBooking.NewCreateBooking(d.Repo, d.Locker, d.Audit, policy, d.Log)
	listMineUC := ucBooking.NewListMyBookings(d.Repo, loc)
	cancelUC := ucBooking.NewCancelBooking(d.Repo, d.Audit, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(listServicesUC, slotsUC, createBookingUC)
	bookingHandler := handlers.NewBookingHandler(listMineUC, cancelUC)

	adminHandler := handlers.NewAdminHandler(handlers.AdminUseCases{
		ListAll:      ucBooking.NewListAllBookings(d.Repo),
		UpdateStatus: ucBooking.NewUpdateBookingStatus(d.Repo, d.Audit),
		Analytics:    ucBooking.NewGetAnalytics(d.Repo),
		GetWeek:      ucSchedule.NewGetAvailability(d.Repo),
		ReplaceWeek:  ucSchedule.NewReplaceAvailability(d.Repo, d.Audit),
		ListBlocked:  ucSchedule.NewListBlockedDates(d.Repo),
		Block:        ucSchedule.NewBlockDate(d.Repo, d.Audit),
		Unblock:      ucSchedule.NewUnblockDate(d.Repo, d.Audit),
	})

	authHandler := handlers.NewAuthHandler(handlers.AuthDeps{
		Tokens:        tokens,
		Provider:      provider,
		CookieSecure:  cfg.CookieSecure,
		OAuthLogin:    ucAccount.NewOAuthLogin(d.Repo, d.Audit),
		Register:      ucAccount.NewRegister(d.Repo),
		PasswordLogin: ucAccount.NewPasswordLogin(d.Repo, d.Audit),
		UpdateProfile: ucAccount.NewUpdateProfile(d.Repo),
		Log:           d.Log,
	})

	reviewHandler := handlers.NewReviewHandler(
		ucReview.NewListReviews(d.Repo),
		ucReview.NewCreateReview(d.Repo, d.Audit),
	)

	galleryHandler := handlers.NewGalleryHandler(
		ucGallery.NewListImages(d.Repo),
		ucGallery.NewUploadImage(d.Repo, d.Storage, d.Audit, d.Log),
		ucGallery.NewDeleteImage(d.Repo, d.Storage, d.Audit, d.Log),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.Repo)
	healthHandler := handlers.NewHealthHandler(d.Health, d.Log)

	// ======================================================
	// STATIC MEDIA
	// ======================================================
	r.GET("/health", healthHandler.Health)

	if local, ok := d.Storage.(*storage.LocalStorage); ok {
		r.Static("/media", local.BasePath())
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", publicHandler.ListServices)
		api.GET("/services/:id/slots", publicHandler.ServiceSlots)
		api.GET("/slots", publicHandler.Slots)
		api.POST("/bookings", middleware.RateLimit(cfg.RateLimitPerMin, d.Log), publicHandler.CreateBooking)

		api.GET("/reviews", reviewHandler.List)
		api.GET("/gallery", galleryHandler.List)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.GET("/oauth/login", authHandler.OAuthLogin)
		api.GET("/oauth/callback", authHandler.OAuthCallback)

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", authHandler.Me)
		api.POST("/auth/logout", authHandler.Logout)
		api.PATCH("/auth/profile", middleware.RequireAuth(), authHandler.UpdateProfile)

		// ------------------------------
		// SIGNED-IN CLIENT
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.RequireAuth())
		{
			me.GET("/bookings", bookingHandler.ListMine)
			me.POST("/bookings/:id/cancel", bookingHandler.Cancel)
			me.POST("/reviews", reviewHandler.Create)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/bookings", adminHandler.ListBookings)
			admin.PATCH("/bookings/:id/status", adminHandler.UpdateStatus)
			admin.GET("/analytics", adminHandler.Analytics)

			admin.GET("/availability", adminHandler.GetAvailability)
			admin.PUT("/availability", adminHandler.ReplaceAvailability)

			admin.GET("/blocked-dates", adminHandler.ListBlockedDates)
			admin.POST("/blocked-dates", adminHandler.BlockDate)
			admin.DELETE("/blocked-dates/:id", adminHandler.UnblockDate)

			admin.POST("/gallery", galleryHandler.Upload)
			admin.DELETE("/gallery/:id", galleryHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
