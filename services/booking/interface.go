package booking

import (
	"context"

	bookingRepo "doctorsportal/database/repository/booking"
	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/models"
	"doctorsportal/services/notification"
)

// BookingService defines the booking workflow.
type BookingService interface {
	Create(ctx context.Context, req models.BookingRequest) (*CreateResult, error)
	ListForPatient(ctx context.Context, requester, patient string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	Catalog    serviceRepo.ServiceRepository
	Dispatcher notification.Dispatcher
}

func NewDefaultBookingService(
	repo bookingRepo.BookingRepository,
	catalog serviceRepo.ServiceRepository,
	dispatcher notification.Dispatcher,
) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Catalog: catalog, Dispatcher: dispatcher}
}

// Reasons reported when a booking is not created.
const (
	ReasonAlreadyBooked = "already_booked"
	ReasonSlotTaken     = "slot_taken"
)

// CreateResult is the outcome of a booking attempt. An unsuccessful result is
// not an error: Booking then holds the conflicting booking.
type CreateResult struct {
	Success bool                `json:"success"`
	Reason  string              `json:"reason,omitempty"`
	Result  *models.WriteResult `json:"result,omitempty"`
	Booking *models.Booking     `json:"booking,omitempty"`
}
