package notification

import (
	"context"

	"glowbook/models"
)

// PushSender delivers a push message to one device token.
type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}

// NotificationService owns the notifications collection: insertion with push
// fan-out, per-recipient queries and read tracking.
type NotificationService interface {
	// Dispatch persists the notification and best-effort pushes it to the
	// recipient's device. Push failures are logged, never returned.
	Dispatch(ctx context.Context, n models.Notification) (*models.Notification, error)
	// ListForUser returns the recipient's notifications, newest first.
	// unreadOnly restricts to unread; limit of 0 means no truncation.
	ListForUser(ctx context.Context, userID string, unreadOnly bool, limit int64) ([]models.Notification, error)
	// UnreadCount counts the recipient's unread notifications.
	UnreadCount(ctx context.Context, userID string) (int64, error)
	// MarkRead flips isRead on one notification owned by the caller.
	MarkRead(ctx context.Context, callerID, notificationID string) error
	// MarkAllRead flips isRead on all of the caller's unread notifications
	// and returns the number flipped.
	MarkAllRead(ctx context.Context, callerID string) (int64, error)
}
