package notification

import (
	"context"
	"fmt"

	"glowbook/utils"

	"firebase.google.com/go/v4/messaging"
)

// FCMPushSender delivers pushes through Firebase Cloud Messaging.
type FCMPushSender struct{}

// Send pushes one message to the given device token. Returns nil when the
// FCM client was never initialized (push disabled).
func (FCMPushSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return nil
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
