package bookingRepo

import (
	"context"
	"errors"

	"doctorsportal/models"
)

// ErrSlotTaken is returned by Create when the (treatment, date, slot) index
// rejects the insert.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// FindByDate returns every booking whose date equals date exactly.
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	// FindByPatient returns every booking made by patient.
	FindByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	// FindForPatient returns the patient's booking for treatment on date, or nil.
	FindForPatient(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	// FindForSlot returns the booking holding slot of treatment on date, or nil.
	FindForSlot(ctx context.Context, treatment, date, slot string) (*models.Booking, error)
	// Create inserts a new booking.
	Create(ctx context.Context, booking *models.Booking) error
}
