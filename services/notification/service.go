package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "glowbook/database/repository/notification"
	userRepo "glowbook/database/repository/user"
	"glowbook/models"
	"glowbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Users userRepo.UserRepository
	Push  PushSender
}

// Dispatch persists the notification and best-effort pushes it to the
// recipient's device.
func (s *DefaultNotificationService) Dispatch(ctx context.Context, n models.Notification) (*models.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	n.IsRead = false

	if err := s.Repo.Create(&n); err != nil {
		return nil, fmt.Errorf("dispatch: failed to store notification: %w", err)
	}

	s.push(ctx, &n)
	return &n, nil
}

// push sends the FCM message when the recipient has a registered device.
// Failures are logged only; the stored notification is the source of truth.
func (s *DefaultNotificationService) push(ctx context.Context, n *models.Notification) {
	if s.Push == nil {
		return
	}
	logger := utils.GetLogger()

	recipient, err := s.Users.GetByID(n.UserID)
	if err != nil || recipient == nil || recipient.FCMToken == "" {
		return
	}

	data := map[string]string{
		"type":        n.Type,
		"relatedId":   n.RelatedID,
		"relatedType": n.RelatedType,
	}
	if err := s.Push.Send(ctx, recipient.FCMToken, n.Title, n.Message, data); err != nil {
		logger.Warn("push delivery failed",
			zap.String("userId", n.UserID),
			zap.String("type", n.Type),
			zap.Error(err))
	}
}

// ListForUser returns the recipient's notifications, newest first.
func (s *DefaultNotificationService) ListForUser(ctx context.Context, userID string, unreadOnly bool, limit int64) ([]models.Notification, error) {
	return s.Repo.ListByUser(userID, unreadOnly, limit)
}

// UnreadCount counts the recipient's unread notifications.
func (s *DefaultNotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.Repo.CountUnread(userID)
}

// MarkRead flips isRead on one notification owned by the caller.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, callerID, notificationID string) error {
	n, err := s.Repo.GetByID(notificationID)
	if err != nil {
		return fmt.Errorf("failed to fetch notification: %w", err)
	}
	if n == nil {
		return ErrNotificationNotFound
	}
	if n.UserID != callerID {
		return ErrNotRecipient
	}
	return s.Repo.MarkRead(notificationID)
}

// MarkAllRead flips isRead on all of the caller's unread notifications.
func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, callerID string) (int64, error) {
	return s.Repo.MarkAllRead(callerID)
}
