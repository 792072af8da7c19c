package handlers

import (
	"net/http"

	catalogSvc "glowbook/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListCategories returns the service categories for the browse page.
func ListCategories(svc catalogSvc.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		categories, err := svc.ListCategories(c.Request.Context())
		if err != nil {
			logger.Error("Failed to list categories", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetStats returns the marketplace counters for the landing page.
func GetStats(svc catalogSvc.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		stats, err := svc.GetStats(c.Request.Context())
		if err != nil {
			logger.Error("Failed to get stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// ListPlans returns the subscription plans.
func ListPlans(svc catalogSvc.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		plans, err := svc.ListPlans(c.Request.Context())
		if err != nil {
			logger.Error("Failed to list plans", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plans"})
			return
		}
		c.JSON(http.StatusOK, plans)
	}
}
