package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"hospitality/config"
	"hospitality/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// ReminderClient enqueues check-in reminder tasks on the asynq queue.
type ReminderClient struct {
	client *asynq.Client
}

// NewReminderClient creates a ReminderClient against the reminder queue DB.
func NewReminderClient() *ReminderClient {
	return &ReminderClient{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleCheckInReminder queues a reminder mail for 09:00 UTC the day before
// check-in. Stays booked for today or tomorrow fire immediately.
func (c *ReminderClient) ScheduleCheckInReminder(res *models.Reservation, guest *models.Guest, room *models.Room) error {
	payload := models.ReminderPayload{
		ReservationID: res.ID,
		GuestName:     guest.Name,
		Email:         guest.Email,
		RoomNumber:    room.Number,
		CheckIn:       res.CheckIn,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	checkIn, err := models.ParseDate(res.CheckIn)
	if err != nil {
		return fmt.Errorf("bad check-in date on reservation %s: %w", res.ID, err)
	}
	fireAt := checkIn.AddDate(0, 0, -1).Add(9 * time.Hour)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	task := asynq.NewTask(TypeReminderSend, b)
	if _, err := c.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder for reservation %s: %w", res.ID, err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (c *ReminderClient) Close() error {
	return c.client.Close()
}
