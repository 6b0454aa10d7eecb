package booking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create books req.Slot of req.Treatment on req.Date for req.Patient.
//
// A patient holding a booking for the same treatment and date gets that
// booking back with Success false, as does anyone asking for a slot that is
// already taken. The confirmation email is dispatched after the insert and
// never fails the booking.
func (s *DefaultBookingService) Create(ctx context.Context, req models.BookingRequest) (*CreateResult, error) {
	logger := utils.GetLogger()

	service, err := s.Catalog.FindByName(ctx, req.Treatment)
	if err != nil {
		return nil, fmt.Errorf("failed to look up treatment: %w", err)
	}
	if service == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTreatment, req.Treatment)
	}
	if !slices.Contains(service.Slots, req.Slot) {
		return nil, fmt.Errorf("%w: %s", ErrSlotNotOffered, req.Slot)
	}

	existing, err := s.Repo.FindForPatient(ctx, req.Treatment, req.Date, req.Patient)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing booking: %w", err)
	}
	if existing != nil {
		logger.Info("duplicate booking rejected",
			zap.String("patient", req.Patient),
			zap.String("treatment", req.Treatment),
			zap.String("date", req.Date))
		return &CreateResult{Success: false, Reason: ReasonAlreadyBooked, Booking: existing}, nil
	}

	holder, err := s.Repo.FindForSlot(ctx, req.Treatment, req.Date, req.Slot)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}
	if holder != nil {
		logger.Info("slot already booked",
			zap.String("treatment", req.Treatment),
			zap.String("date", req.Date),
			zap.String("slot", req.Slot))
		return &CreateResult{Success: false, Reason: ReasonSlotTaken, Booking: holder}, nil
	}

	booking := models.Booking{
		ID:          uuid.New().String(),
		Patient:     req.Patient,
		PatientName: req.PatientName,
		Treatment:   req.Treatment,
		Date:        req.Date,
		Slot:        req.Slot,
		Phone:       req.Phone,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, &booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			// Lost a race with a concurrent insert for the same slot.
			return &CreateResult{Success: false, Reason: ReasonSlotTaken}, nil
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.Dispatcher != nil {
		if err := s.Dispatcher.DispatchConfirmation(ctx, booking); err != nil {
			logger.Error("failed to dispatch confirmation email",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	return &CreateResult{
		Success: true,
		Result:  &models.WriteResult{Acknowledged: true, InsertedID: booking.ID},
		Booking: &booking,
	}, nil
}

// ListForPatient returns patient's bookings; requester must be that patient.
func (s *DefaultBookingService) ListForPatient(ctx context.Context, requester, patient string) ([]models.Booking, error) {
	if patient == "" || patient != requester {
		return nil, ErrForbidden
	}
	bookings, err := s.Repo.FindByPatient(ctx, patient)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
