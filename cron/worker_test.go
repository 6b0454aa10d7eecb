package cron

import (
	"context"
	"errors"
	"testing"

	"doctorsportal/models"
	"doctorsportal/services/notification"
	"doctorsportal/services/tasks"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEmailSender struct {
	sent    []notification.EmailMessage
	callErr error
}

func (m *mockEmailSender) Send(ctx context.Context, msg notification.EmailMessage) error {
	if m.callErr != nil {
		return m.callErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

func TestHandleConfirmationTask(t *testing.T) {
	sender := &mockEmailSender{}
	task, _, err := tasks.NewBookingConfirmationTask(models.Booking{
		ID: "b1", Patient: "a@x.com", PatientName: "Alice",
		Treatment: "Cleaning", Date: "Jan 1, 2023", Slot: "9:00",
	})
	require.NoError(t, err)

	require.NoError(t, handleConfirmationTask(sender)(context.Background(), task))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "a@x.com", sender.sent[0].To)
	assert.Contains(t, sender.sent[0].Subject, "Cleaning")
}

func TestHandleConfirmationTaskSkipsBadPayload(t *testing.T) {
	sender := &mockEmailSender{}

	err := handleConfirmationTask(sender)(context.Background(),
		asynq.NewTask(tasks.TypeBookingConfirmation, []byte("{not json")))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	task, _, err := tasks.NewBookingConfirmationTask(models.Booking{ID: "b2"})
	require.NoError(t, err)
	err = handleConfirmationTask(sender)(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, sender.sent)
}

func TestHandleConfirmationTaskRetriesOnSendFailure(t *testing.T) {
	sender := &mockEmailSender{callErr: errors.New("sendgrid down")}
	task, _, err := tasks.NewBookingConfirmationTask(models.Booking{ID: "b3", Patient: "a@x.com"})
	require.NoError(t, err)

	err = handleConfirmationTask(sender)(context.Background(), task)
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestInitEmailWorkerStartsOnce(t *testing.T) {
	mr := miniredis.RunT(t)

	srv := InitEmailWorker(asynq.RedisClientOpt{Addr: mr.Addr()}, &mockEmailSender{}, 1)
	require.NotNil(t, srv)
	srv.Shutdown()
}
