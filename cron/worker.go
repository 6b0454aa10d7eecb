package cron

import (
	"context"
	"fmt"

	"doctorsportal/services/notification"
	"doctorsportal/services/tasks"
	"doctorsportal/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitEmailWorker starts an asynq server delivering queued confirmation
// emails. The returned server must be shut down by the caller.
func InitEmailWorker(redisOpts asynq.RedisClientOpt, sender notification.EmailSender, concurrency int) *asynq.Server {
	logger := utils.GetLogger()
	if concurrency <= 0 {
		concurrency = 5
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				tasks.QueueNotifications: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, handleConfirmationTask(sender))

	// Start does not wait for Redis; the server keeps reconnecting on its own.
	if err := srv.Start(mux); err != nil {
		logger.Error("email worker failed to start; confirmations stay queued", zap.Error(err))
		return srv
	}
	logger.Info("email worker started", zap.Int("concurrency", concurrency))

	return srv
}

func handleConfirmationTask(sender notification.EmailSender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		booking, err := tasks.ParseBookingConfirmation(task)
		if err != nil {
			logger.Error("invalid confirmation payload", zap.Error(err))
			return fmt.Errorf("invalid confirmation payload: %v: %w", err, asynq.SkipRetry)
		}
		if booking.Patient == "" {
			logger.Warn("confirmation without recipient", zap.String("bookingID", booking.ID))
			return fmt.Errorf("confirmation %s has no recipient: %w", booking.ID, asynq.SkipRetry)
		}

		if err := sender.Send(ctx, notification.BuildConfirmation(booking)); err != nil {
			logger.Error("failed to deliver confirmation",
				zap.String("bookingID", booking.ID), zap.Error(err))
			return err
		}
		return nil
	}
}
