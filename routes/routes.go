package routes

import (
	"net/http"
	"time"

	"glowbook/handlers"
	"glowbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (require authentication)
		api.Use(middleware.RequireAuth(hb.UserRepo))
		api.GET("/me", hb.GetMeHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints. The list
// endpoints use optional auth: anonymous callers get an empty list.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/mine", middleware.OptionalAuth(hb.UserRepo), hb.MyBookingsHandler)
		api.GET("/therapist", middleware.OptionalAuth(hb.UserRepo), hb.TherapistBookingsHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(hb.UserRepo))
		protected.POST("", hb.CreateBookingHandler)
		protected.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
	}
}

// RegisterNotificationRoutes registers notification endpoints. The queries
// use optional auth and degrade to empty results for anonymous callers.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.GET("", middleware.OptionalAuth(hb.UserRepo), hb.ListNotificationsHandler)
		api.GET("/unread-count", middleware.OptionalAuth(hb.UserRepo), hb.UnreadCountHandler)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(hb.UserRepo))
		protected.PATCH("/:id/read", hb.MarkReadHandler)
		protected.POST("/read-all", hb.MarkAllReadHandler)
	}
}

// RegisterTherapistRoutes registers the therapist profile endpoints.
func RegisterTherapistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/therapists")
	{
		api.GET("", hb.ListTherapistsHandler)

		// /me before /:id so the literal segment wins.
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(hb.UserRepo))
		protected.GET("/me", hb.MyTherapistProfileHandler)
		protected.PUT("/me", hb.UpsertTherapistProfileHandler)

		api.GET("/:id", hb.GetTherapistHandler)
		api.GET("/:id/reviews", hb.ListTherapistReviewsHandler)
	}
}

// RegisterCatalogRoutes registers the public reference-data endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/categories", hb.ListCategoriesHandler)
	r.GET("/api/stats", hb.GetStatsHandler)
	r.GET("/api/plans", hb.ListPlansHandler)
}

// RegisterReviewRoutes registers review creation. Listing lives under the
// therapist routes.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.RequireAuth(hb.UserRepo))
		api.POST("", hb.CreateReviewHandler)
	}
}

// RegisterPaymentRoutes registers the Stripe webhook endpoint. It is
// authenticated by signature, not by bearer token.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/payments/webhook", hb.StripeWebhookHandler)
}

// RegisterStorageRoutes registers upload endpoints when storage is configured.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.UploadImageHandler == nil {
		return
	}
	api := r.Group("/api/storage")
	{
		api.Use(middleware.RequireAuth(hb.UserRepo))
		api.POST("/upload/:folder", hb.UploadImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Glowbook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterTherapistRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
