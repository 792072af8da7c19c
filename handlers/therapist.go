package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"glowbook/middleware"
	"glowbook/models"
	therapistSvc "glowbook/services/therapist"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type upsertProfileRequest struct {
	Specialty      string                   `json:"specialty" binding:"required"`
	Bio            string                   `json:"bio"`
	Experience     string                   `json:"experience"`
	Certifications []string                 `json:"certifications"`
	Location       string                   `json:"location" binding:"required"`
	ServiceArea    []string                 `json:"serviceArea"`
	PriceRange     models.PriceRange        `json:"priceRange"`
	Availability   []models.DayAvailability `json:"availability"`
}

// ListTherapists returns active profiles matching the optional ?location=,
// ?specialty= and ?limit= filters.
func ListTherapists(svc therapistSvc.TherapistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var limit int
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
				return
			}
			limit = parsed
		}

		views, err := svc.List(c.Request.Context(), therapistSvc.ListFilters{
			Location:  c.Query("location"),
			Specialty: c.Query("specialty"),
			Limit:     limit,
		})
		if err != nil {
			logger.Error("Failed to list therapists", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list therapists"})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// GetTherapist returns one therapist profile with the owner's contact fields.
func GetTherapist(svc therapistSvc.TherapistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		view, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, therapistSvc.ErrProfileNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "therapist not found"})
				return
			}
			logger.Error("Failed to get therapist", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get therapist"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// MyTherapistProfile returns the caller's own profile, or null when the
// caller is not a therapist.
func MyTherapistProfile(svc therapistSvc.TherapistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		caller, ok := middleware.CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		profile, err := svc.GetProfileForUser(c.Request.Context(), caller)
		if err != nil {
			logger.Error("Failed to get own profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpsertTherapistProfile creates or updates the caller's profile, promoting
// the caller to therapist on first submission.
func UpsertTherapistProfile(svc therapistSvc.TherapistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		caller, ok := middleware.CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req upsertProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		id, err := svc.UpsertProfile(c.Request.Context(), caller, therapistSvc.UpsertInput{
			Specialty:      req.Specialty,
			Bio:            req.Bio,
			Experience:     req.Experience,
			Certifications: req.Certifications,
			Location:       req.Location,
			ServiceArea:    req.ServiceArea,
			PriceRange:     req.PriceRange,
			Availability:   req.Availability,
		})
		if err != nil {
			logger.Error("Failed to upsert therapist profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"profileId": id})
	}
}
