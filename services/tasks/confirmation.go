package tasks

import (
	"encoding/json"

	"doctorsportal/models"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingConfirmation = "email:booking_confirmation"
	QueueNotifications      = "notifications"
)

// NewBookingConfirmationTask wraps booking into a retryable email task.
func NewBookingConfirmationTask(booking models.Booking) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(booking)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmation, b)
	opts := []asynq.Option{
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(5),
	}
	return task, opts, nil
}

// ParseBookingConfirmation decodes the payload of a confirmation task.
func ParseBookingConfirmation(task *asynq.Task) (models.Booking, error) {
	var booking models.Booking
	err := json.Unmarshal(task.Payload(), &booking)
	return booking, err
}
