package handlers

import (
	userRepoPkg "glowbook/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct, plus the user
// repository the auth middleware resolves callers against.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterHandler       gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	GetMeHandler          gin.HandlerFunc
	UpdateFCMTokenHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	MyBookingsHandler          gin.HandlerFunc
	TherapistBookingsHandler   gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler gin.HandlerFunc
	UnreadCountHandler       gin.HandlerFunc
	MarkReadHandler          gin.HandlerFunc
	MarkAllReadHandler       gin.HandlerFunc

	// Therapist endpoints
	ListTherapistsHandler         gin.HandlerFunc
	GetTherapistHandler           gin.HandlerFunc
	MyTherapistProfileHandler     gin.HandlerFunc
	UpsertTherapistProfileHandler gin.HandlerFunc

	// Catalog endpoints
	ListCategoriesHandler gin.HandlerFunc
	GetStatsHandler       gin.HandlerFunc
	ListPlansHandler      gin.HandlerFunc

	// Review endpoints
	CreateReviewHandler         gin.HandlerFunc
	ListTherapistReviewsHandler gin.HandlerFunc

	// Payment endpoints
	StripeWebhookHandler gin.HandlerFunc

	// Storage endpoints (nil when Cloudinary is not configured)
	UploadImageHandler gin.HandlerFunc
}
