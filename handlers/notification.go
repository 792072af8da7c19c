package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"glowbook/middleware"
	"glowbook/models"
	notificationSvc "glowbook/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListNotifications returns the caller's notifications, newest first.
// ?unreadOnly=true restricts to unread; ?limit=N truncates. Anonymous callers
// get an empty list.
func ListNotifications(svc notificationSvc.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		caller, ok := middleware.CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusOK, []models.Notification{})
			return
		}

		unreadOnly := c.Query("unreadOnly") == "true"
		var limit int64
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
				return
			}
			limit = parsed
		}

		items, err := svc.ListForUser(c.Request.Context(), caller.ID, unreadOnly, limit)
		if err != nil {
			logger.Error("Failed to list notifications", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// UnreadNotificationCount returns the caller's unread notification count.
// Anonymous callers get zero.
func UnreadNotificationCount(svc notificationSvc.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		caller, ok := middleware.CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"count": 0})
			return
		}

		count, err := svc.UnreadCount(c.Request.Context(), caller.ID)
		if err != nil {
			logger.Error("Failed to count notifications", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count notifications"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

// MarkNotificationRead flips isRead on one notification owned by the caller.
func MarkNotificationRead(svc notificationSvc.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		caller, ok := middleware.CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		err := svc.MarkRead(c.Request.Context(), caller.ID, c.Param("id"))
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "notification marked read"})
		case errors.Is(err, notificationSvc.ErrNotificationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		case errors.Is(err, notificationSvc.ErrNotRecipient):
			c.JSON(http.StatusForbidden, gin.H{"error": "not the recipient of this notification"})
		default:
			logger.Error("Failed to mark notification read", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notification read"})
		}
	}
}

// MarkAllNotificationsRead flips isRead on all of the caller's unread
// notifications.
func MarkAllNotificationsRead(svc notificationSvc.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		caller, ok := middleware.CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		count, err := svc.MarkAllRead(c.Request.Context(), caller.ID)
		if err != nil {
			logger.Error("Failed to mark notifications read", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notifications read"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": count})
	}
}
