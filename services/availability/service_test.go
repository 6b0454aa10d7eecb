package availability

import (
	"context"
	"errors"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	services []models.Service
	err      error
	calls    int
}

func (s *stubCatalog) FindAll(ctx context.Context) ([]models.Service, error) {
	s.calls++
	return s.services, s.err
}

type stubBookings struct {
	byDate    map[string][]models.Booking
	err       error
	lastQuery string
}

func (s *stubBookings) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	s.lastQuery = date
	return s.byDate[date], s.err
}

func TestServiceAvailable(t *testing.T) {
	cat := &stubCatalog{services: catalog()}
	books := &stubBookings{byDate: map[string][]models.Booking{
		day: {booking("Cleaning", day, "10:00", "a@x.com")},
	}}
	svc := NewService(cat, books, "Dec 4, 2022")

	got, err := svc.Available(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, day, books.lastQuery)
	assert.Equal(t, []string{"9:00", "11:00"}, got[0].Slots)
}

func TestServiceAvailableUsesDefaultDate(t *testing.T) {
	cat := &stubCatalog{services: catalog()}
	books := &stubBookings{}
	svc := NewService(cat, books, "Dec 4, 2022")

	got, err := svc.Available(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Dec 4, 2022", books.lastQuery)
	assert.Equal(t, []string{"9:00", "10:00", "11:00"}, got[0].Slots)
}

func TestServiceAvailableFetchesCatalogEveryCall(t *testing.T) {
	cat := &stubCatalog{services: catalog()}
	svc := NewService(cat, &stubBookings{}, day)

	_, err := svc.Available(context.Background(), day)
	require.NoError(t, err)
	_, err = svc.Available(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.calls)
}

func TestServiceAvailableStorageErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewService(&stubCatalog{err: boom}, &stubBookings{}, day).Available(context.Background(), day)
	assert.ErrorIs(t, err, boom)

	_, err = NewService(&stubCatalog{services: catalog()}, &stubBookings{err: boom}, day).Available(context.Background(), day)
	assert.ErrorIs(t, err, boom)
}
