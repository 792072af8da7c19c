package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowbook/config"
	"glowbook/cron"
	"glowbook/database"
	bookingRepoPkg "glowbook/database/repository/booking"
	catalogRepoPkg "glowbook/database/repository/catalog"
	notificationRepoPkg "glowbook/database/repository/notification"
	paymentRepoPkg "glowbook/database/repository/payment"
	reviewRepoPkg "glowbook/database/repository/review"
	subscriptionRepoPkg "glowbook/database/repository/subscription"
	therapistRepoPkg "glowbook/database/repository/therapist"
	userRepoPkg "glowbook/database/repository/user"
	"glowbook/handlers"
	"glowbook/middleware"
	"glowbook/routes"
	"glowbook/services/booking"
	"glowbook/services/catalog"
	"glowbook/services/notification"
	"glowbook/services/payment"
	"glowbook/services/review"
	"glowbook/services/tasks"
	"glowbook/services/therapist"
	"glowbook/services/user"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitIdentityCache()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	therapistRepo := therapistRepoPkg.NewMongoTherapistRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	subscriptionRepo := subscriptionRepoPkg.NewMongoSubscriptionRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Repo:  notificationRepo,
		Users: userRepo,
		Push:  &notification.FCMPushSender{},
	}

	reminderScheduler := tasks.NewAsynqScheduler()
	defer reminderScheduler.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:       bookingRepo,
		Users:      userRepo,
		Therapists: therapistRepo,
		Payments:   paymentRepo,
		Notifier:   notificationService,
		Reminders:  reminderScheduler,
	}

	therapistService := &therapist.DefaultTherapistService{
		Repo:  therapistRepo,
		Users: userRepo,
		Cache: &utils.RedisIdentityInvalidator{},
	}

	catalogService := &catalog.DefaultCatalogService{
		Repo: catalogRepo,
	}

	reviewService := &review.DefaultReviewService{
		Repo:       reviewRepo,
		Bookings:   bookingRepo,
		Therapists: therapistRepo,
	}

	webhookService := &payment.DefaultWebhookService{
		Payments:      paymentRepo,
		Subscriptions: subscriptionRepo,
		Notifier:      notificationService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterHandler:       handlers.Register(userService),
		LoginHandler:          handlers.Login(userService),
		GetMeHandler:          handlers.GetMe(),
		UpdateFCMTokenHandler: handlers.UpdateFCMToken(userService),

		// Booking endpoints.
		CreateBookingHandler:       handlers.CreateBooking(bookingService),
		UpdateBookingStatusHandler: handlers.UpdateBookingStatus(bookingService),
		MyBookingsHandler:          handlers.MyBookings(bookingService),
		TherapistBookingsHandler:   handlers.TherapistBookings(bookingService),

		// Notification endpoints.
		ListNotificationsHandler: handlers.ListNotifications(notificationService),
		UnreadCountHandler:       handlers.UnreadNotificationCount(notificationService),
		MarkReadHandler:          handlers.MarkNotificationRead(notificationService),
		MarkAllReadHandler:       handlers.MarkAllNotificationsRead(notificationService),

		// Therapist endpoints.
		ListTherapistsHandler:         handlers.ListTherapists(therapistService),
		GetTherapistHandler:           handlers.GetTherapist(therapistService),
		MyTherapistProfileHandler:     handlers.MyTherapistProfile(therapistService),
		UpsertTherapistProfileHandler: handlers.UpsertTherapistProfile(therapistService),

		// Catalog endpoints.
		ListCategoriesHandler: handlers.ListCategories(catalogService),
		GetStatsHandler:       handlers.GetStats(catalogService),
		ListPlansHandler:      handlers.ListPlans(catalogService),

		// Review endpoints.
		CreateReviewHandler:         handlers.CreateReview(reviewService),
		ListTherapistReviewsHandler: handlers.ListTherapistReviews(reviewService),

		// Payment endpoints.
		StripeWebhookHandler: handlers.StripeWebhook(webhookService),
	}
	if storageService != nil {
		handlerBundle.UploadImageHandler = handlers.UploadImage(storageService, userRepo)
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background reminder worker.
	cron.InitReminderWorker(bookingRepo, notificationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
