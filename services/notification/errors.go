package notification

import "errors"

var (
	// ErrNotificationNotFound signals a lookup for a missing notification.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrNotRecipient signals that the caller is not the notification's recipient.
	ErrNotRecipient = errors.New("not authorized to act on this notification")
)
