package notification

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"
	"doctorsportal/services/tasks"
	"doctorsportal/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Dispatcher hands a booking confirmation off for delivery.
type Dispatcher interface {
	DispatchConfirmation(ctx context.Context, booking models.Booking) error
}

// Enqueuer is the subset of *asynq.Client used for dispatching.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueDispatcher enqueues confirmations for the email worker.
type QueueDispatcher struct {
	client Enqueuer
}

func NewQueueDispatcher(client Enqueuer) *QueueDispatcher {
	return &QueueDispatcher{client: client}
}

func (d *QueueDispatcher) DispatchConfirmation(ctx context.Context, booking models.Booking) error {
	task, opts, err := tasks.NewBookingConfirmationTask(booking)
	if err != nil {
		return fmt.Errorf("failed to build confirmation task: %w", err)
	}
	info, err := d.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue confirmation: %w", err)
	}
	utils.GetLogger().Debug("confirmation email queued",
		zap.String("taskID", info.ID), zap.String("bookingID", booking.ID))
	return nil
}

// DirectDispatcher sends confirmations in the background without a queue.
type DirectDispatcher struct {
	sender  EmailSender
	timeout time.Duration
}

func NewDirectDispatcher(sender EmailSender) *DirectDispatcher {
	return &DirectDispatcher{sender: sender, timeout: 15 * time.Second}
}

// DispatchConfirmation returns immediately; delivery errors are only logged.
func (d *DirectDispatcher) DispatchConfirmation(_ context.Context, booking models.Booking) error {
	msg := BuildConfirmation(booking)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.sender.Send(ctx, msg); err != nil {
			utils.GetLogger().Error("failed to send confirmation email",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}()
	return nil
}
