package handlers

import (
	"errors"
	"net/http"

	"glowbook/middleware"
	reviewSvc "glowbook/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createReviewRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// CreateReview stores a review on a completed booking owned by the caller.
func CreateReview(svc reviewSvc.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		caller, ok := middleware.CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req createReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		rv, err := svc.Create(c.Request.Context(), caller, reviewSvc.CreateInput{
			BookingID: req.BookingID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		})
		switch {
		case err == nil:
			c.JSON(http.StatusCreated, rv)
		case errors.Is(err, reviewSvc.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		case errors.Is(err, reviewSvc.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, reviewSvc.ErrNotCustomer):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the booking's customer can leave a review"})
		case errors.Is(err, reviewSvc.ErrBookingNotCompleted):
			c.JSON(http.StatusBadRequest, gin.H{"error": "booking is not completed yet"})
		case errors.Is(err, reviewSvc.ErrAlreadyReviewed):
			c.JSON(http.StatusConflict, gin.H{"error": "booking already reviewed"})
		default:
			logger.Error("Failed to create review", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		}
	}
}

// ListTherapistReviews returns a therapist's reviews, newest first.
func ListTherapistReviews(svc reviewSvc.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		reviews, err := svc.ListForTherapist(c.Request.Context(), c.Param("id"))
		if err != nil {
			logger.Error("Failed to list reviews", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}
