package http

import (
	"github.com/gin-gonic/gin"
	"github.com/velvetdk/marketplace-backend/internal/delivery/http/handler"
	"github.com/velvetdk/marketplace-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler          *handler.AuthHandler
	profileHandler       *handler.ProfileHandler
	advertisementHandler *handler.AdvertisementHandler
	dashboardHandler     *handler.DashboardHandler
	bookingHandler       *handler.BookingHandler
	verificationHandler  *handler.VerificationHandler
	authMiddleware       *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	advertisementHandler *handler.AdvertisementHandler,
	dashboardHandler *handler.DashboardHandler,
	bookingHandler *handler.BookingHandler,
	verificationHandler *handler.VerificationHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:          authHandler,
		profileHandler:       profileHandler,
		advertisementHandler: advertisementHandler,
		dashboardHandler:     dashboardHandler,
		bookingHandler:       bookingHandler,
		verificationHandler:  verificationHandler,
		authMiddleware:       authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.POST("/me", r.profileHandler.CreateMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.GET("/me/completion", r.profileHandler.GetCompletion)
				profile.POST("/me/close", r.profileHandler.CloseAccount)
				profile.POST("/me/description-suggestions", r.profileHandler.SuggestDescriptions)
			}

			// Advertisement routes
			advertisement := protected.Group("/advertisement")
			{
				advertisement.GET("/status", r.advertisementHandler.GetStatus)
				advertisement.POST("/bump", r.advertisementHandler.Bump)
				advertisement.GET("/packages", r.advertisementHandler.GetPackages)
			}

			// Dashboard routes
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/stats", r.dashboardHandler.GetStats)
				dashboard.GET("/activities", r.dashboardHandler.GetActivities)
				dashboard.GET("/bookings/upcoming", r.dashboardHandler.GetUpcomingBookings)
				dashboard.GET("/bookings/stats", r.dashboardHandler.GetBookingStats)
			}

			// Booking routes
			protected.PUT("/bookings/:id/status", r.bookingHandler.UpdateStatus)
			protected.PUT("/availability", r.bookingHandler.SetAvailability)

			// Verification routes
			verification := protected.Group("/verification")
			{
				verification.GET("/access", r.verificationHandler.Access)
				verification.POST("/submit", r.verificationHandler.Submit)
				verification.POST("/skip", r.verificationHandler.Skip)
			}
		}
	}

	return router
}
