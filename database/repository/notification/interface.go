package notificationRepo

import "glowbook/models"

// NotificationRepository defines methods for notification data access.
type NotificationRepository interface {
	// Create inserts a new notification.
	Create(n *models.Notification) error
	// GetByID retrieves a notification by its unique ID. Returns (nil, nil)
	// when no notification matches.
	GetByID(id string) (*models.Notification, error)
	// ListByUser retrieves the recipient's notifications sorted by created_at
	// descending. unreadOnly restricts to is_read=false; limit of 0 means no
	// truncation.
	ListByUser(userID string, unreadOnly bool, limit int64) ([]models.Notification, error)
	// CountUnread counts the recipient's unread notifications.
	CountUnread(userID string) (int64, error)
	// MarkRead flips is_read on one notification.
	MarkRead(id string) error
	// MarkAllRead flips is_read on all of the recipient's unread
	// notifications and returns the number flipped.
	MarkAllRead(userID string) (int64, error)
}
