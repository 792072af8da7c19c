package models

import "time"

// Notification types.
const (
	NotificationNewBooking      = "new_booking"
	NotificationStatusUpdate    = "booking_status_update"
	NotificationBookingReminder = "booking_reminder"
	NotificationPaymentReceived = "payment_received"
)

// Related entity kinds for Notification.RelatedType.
const (
	RelatedBooking = "booking"
	RelatedPayment = "payment"
)

// Notification is an in-app message targeted at one user. Created as a side
// effect of booking and payment mutations; mutated only to flip IsRead.
type Notification struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"userId"`
	Type        string    `bson:"type" json:"type"`
	Title       string    `bson:"title" json:"title"`
	Message     string    `bson:"message" json:"message"`
	RelatedID   string    `bson:"related_id,omitempty" json:"relatedId,omitempty"`
	RelatedType string    `bson:"related_type,omitempty" json:"relatedType,omitempty"`
	IsRead      bool      `bson:"is_read" json:"isRead"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
