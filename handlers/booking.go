package handlers

import (
	"errors"
	"net/http"

	"glowbook/middleware"
	"glowbook/models"
	bookingSvc "glowbook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createBookingRequest struct {
	TherapistID        string          `json:"therapistId" binding:"required"`
	TherapistProfileID string          `json:"therapistProfileId" binding:"required"`
	TreatmentType      string          `json:"treatmentType" binding:"required"`
	ScheduledDate      int64           `json:"scheduledDate" binding:"required"`
	ScheduledTime      string          `json:"scheduledTime" binding:"required"`
	Duration           int             `json:"duration" binding:"required"`
	Address            string          `json:"address" binding:"required"`
	Location           models.GeoPoint `json:"location"`
	Price              float64         `json:"price" binding:"required"`
	Currency           string          `json:"currency"`
	Notes              string          `json:"notes"`
}

type updateStatusRequest struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// CreateBooking inserts a pending booking for the caller and notifies the
// therapist.
func CreateBooking(svc bookingSvc.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		caller, ok := middleware.CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req createBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		id, err := svc.Create(c.Request.Context(), caller, bookingSvc.CreateInput{
			TherapistID:        req.TherapistID,
			TherapistProfileID: req.TherapistProfileID,
			TreatmentType:      req.TreatmentType,
			ScheduledDate:      req.ScheduledDate,
			ScheduledTime:      req.ScheduledTime,
			Duration:           req.Duration,
			Address:            req.Address,
			Location:           req.Location,
			Price:              req.Price,
			Currency:           req.Currency,
			Notes:              req.Notes,
		})
		if err != nil {
			if errors.Is(err, bookingSvc.ErrTherapistNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "therapist not found"})
				return
			}
			logger.Error("Failed to create booking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"bookingId": id})
	}
}

// UpdateBookingStatus patches the booking status on behalf of either party.
func UpdateBookingStatus(svc bookingSvc.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		caller, ok := middleware.CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		err := svc.UpdateStatus(c.Request.Context(), caller, c.Param("id"), req.Status)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "booking updated"})
		case errors.Is(err, bookingSvc.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking status"})
		case errors.Is(err, bookingSvc.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, bookingSvc.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{"error": "not a participant of this booking"})
		default:
			logger.Error("Failed to update booking status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking"})
		}
	}
}

// MyBookings returns the caller's bookings as a customer, enriched with
// therapist and payment info. Anonymous callers get an empty list.
func MyBookings(svc bookingSvc.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		caller, ok := middleware.CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusOK, []models.BookingView{})
			return
		}

		status, err := statusFilter(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		views, err := svc.ListForCustomer(c.Request.Context(), caller.ID, status)
		if err != nil {
			logger.Error("Failed to list customer bookings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// TherapistBookings returns the caller's bookings as a therapist, enriched
// with customer and payment info. Anonymous callers get an empty list.
func TherapistBookings(svc bookingSvc.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		caller, ok := middleware.CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusOK, []models.BookingView{})
			return
		}

		status, err := statusFilter(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		views, err := svc.ListForTherapist(c.Request.Context(), caller.ID, status)
		if err != nil {
			logger.Error("Failed to list therapist bookings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// statusFilter parses the optional ?status= query parameter.
func statusFilter(c *gin.Context) (*models.BookingStatus, error) {
	raw := c.Query("status")
	if raw == "" {
		return nil, nil
	}
	status := models.BookingStatus(raw)
	if !status.Valid() {
		return nil, errors.New("invalid status filter")
	}
	return &status, nil
}
