package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"glowbook/config"
	"glowbook/models"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "reminder:booking"

// NewBookingReminderTask builds a delayed reminder task for a booking.
func NewBookingReminderTask(bookingID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(models.ReminderPayload{BookingID: bookingID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqScheduler enqueues reminder tasks on the shared Redis queue.
type AsynqScheduler struct {
	client *asynq.Client
}

// NewAsynqScheduler builds a scheduler from the configured Redis queue.
func NewAsynqScheduler() *AsynqScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqScheduler{client: client}
}

// ScheduleBookingReminder enqueues a reminder that fires at the given time.
func (s *AsynqScheduler) ScheduleBookingReminder(bookingID string, fireAt time.Time) error {
	task, opts, err := NewBookingReminderTask(bookingID, fireAt)
	if err != nil {
		return fmt.Errorf("schedule reminder: failed to build task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("schedule reminder: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *AsynqScheduler) Close() error {
	return s.client.Close()
}
