package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"glowbook/config"
	bookingRepo "glowbook/database/repository/booking"
	"glowbook/models"
	"glowbook/services/notification"
	"glowbook/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(bookings bookingRepo.BookingRepository, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReminder, handleBookingReminder(bookings, notifSvc))

	go monitorRedisConnection()

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingReminder(bookings bookingRepo.BookingRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		b, err := bookings.GetByID(p.BookingID)
		if err != nil {
			log.Printf("[ReminderHandler] failed to load booking %s: %v", p.BookingID, err)
			return err
		}
		if b == nil || b.Status.Terminal() {
			// Booking gone or already over; nothing to remind about.
			return nil
		}

		_, err = notifSvc.Dispatch(ctx, models.Notification{
			UserID:      b.CustomerID,
			Type:        models.NotificationBookingReminder,
			Title:       "Upcoming Booking",
			Message:     fmt.Sprintf("Reminder: your %s appointment is coming up at %s.", b.TreatmentType, b.ScheduledTime),
			RelatedID:   b.ID,
			RelatedType: models.RelatedBooking,
		})
		if err != nil {
			log.Printf("[ReminderHandler] failed to dispatch reminder: %v", err)
		}
		return err
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
