package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "glowbook/database/repository/booking"
	paymentRepo "glowbook/database/repository/payment"
	therapistRepo "glowbook/database/repository/therapist"
	userRepo "glowbook/database/repository/user"
	"glowbook/models"
	"glowbook/services/notification"
	"glowbook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// reminderLead is how long before the scheduled date the reminder fires.
const reminderLead = 24 * time.Hour

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	Users      userRepo.UserRepository
	Therapists therapistRepo.TherapistRepository
	Payments   paymentRepo.PaymentRepository
	Notifier   notification.NotificationService
	Reminders  ReminderScheduler // optional
}

// Create inserts a pending booking for the caller and notifies the therapist.
func (s *DefaultBookingService) Create(ctx context.Context, caller models.User, in CreateInput) (string, error) {
	therapists, err := s.Users.GetByIDs([]string{in.TherapistID})
	if err != nil {
		return "", fmt.Errorf("create booking: failed to fetch therapist: %w", err)
	}
	if _, ok := therapists[in.TherapistID]; !ok {
		return "", ErrTherapistNotFound
	}
	profile, err := s.Therapists.GetByID(in.TherapistProfileID)
	if err != nil {
		return "", fmt.Errorf("create booking: failed to fetch therapist profile: %w", err)
	}
	if profile == nil {
		return "", ErrTherapistNotFound
	}

	now := time.Now()
	b := &models.Booking{
		ID:                 uuid.New().String(),
		CustomerID:         caller.ID,
		TherapistID:        in.TherapistID,
		TherapistProfileID: in.TherapistProfileID,
		TreatmentType:      in.TreatmentType,
		ScheduledDate:      in.ScheduledDate,
		ScheduledTime:      in.ScheduledTime,
		Duration:           in.Duration,
		Address:            in.Address,
		Location:           in.Location,
		Status:             models.BookingPending,
		Price:              in.Price,
		Currency:           in.Currency,
		Notes:              in.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Repo.Create(b); err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}

	from := caller.Name
	if from == "" {
		from = "a customer"
	}
	_, err = s.Notifier.Dispatch(ctx, models.Notification{
		UserID:      in.TherapistID,
		Type:        models.NotificationNewBooking,
		Title:       "New Booking Request",
		Message:     fmt.Sprintf("You have a new booking request from %s", from),
		RelatedID:   b.ID,
		RelatedType: models.RelatedBooking,
	})
	if err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}

	return b.ID, nil
}

// statusMessage is the notification body sent to the other party; statuses
// absent here produce no notification.
func statusMessage(status models.BookingStatus) string {
	switch status {
	case models.BookingConfirmed:
		return "Your booking has been confirmed!"
	case models.BookingCancelled:
		return "Your booking has been cancelled."
	case models.BookingCompleted:
		return "Your booking has been completed."
	}
	return ""
}

// UpdateStatus patches the booking status and notifies the other party.
// Any enumerated status is accepted from either participant; there is no
// transition-table enforcement.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, caller models.User, bookingID string, status models.BookingStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return fmt.Errorf("update status: failed to fetch booking: %w", err)
	}
	if b == nil {
		return ErrBookingNotFound
	}
	if caller.ID != b.CustomerID && caller.ID != b.TherapistID {
		return ErrNotParticipant
	}

	update := bson.M{"status": status, "updated_at": time.Now()}
	if err := s.Repo.UpdateSetDocument(bookingID, update); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	// Notify the party that did not initiate the change.
	notifyUserID := b.TherapistID
	if caller.ID == b.TherapistID {
		notifyUserID = b.CustomerID
	}
	if msg := statusMessage(status); msg != "" {
		_, err := s.Notifier.Dispatch(ctx, models.Notification{
			UserID:      notifyUserID,
			Type:        models.NotificationStatusUpdate,
			Title:       "Booking Status Update",
			Message:     msg,
			RelatedID:   bookingID,
			RelatedType: models.RelatedBooking,
		})
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}
	}

	if status == models.BookingConfirmed {
		s.scheduleReminder(b)
	}
	return nil
}

// scheduleReminder enqueues a reminder 24h ahead of the scheduled date.
// Scheduling failures are logged only; the status update already landed.
func (s *DefaultBookingService) scheduleReminder(b *models.Booking) {
	if s.Reminders == nil {
		return
	}
	fireAt := time.UnixMilli(b.ScheduledDate).Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return
	}
	if err := s.Reminders.ScheduleBookingReminder(b.ID, fireAt); err != nil {
		utils.GetLogger().Warn("failed to schedule booking reminder",
			zap.String("bookingId", b.ID),
			zap.Error(err))
	}
}
