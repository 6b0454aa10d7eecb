package availability

import (
	"context"
	"fmt"

	"doctorsportal/models"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

// ServiceCatalog supplies the full service catalog.
type ServiceCatalog interface {
	FindAll(ctx context.Context) ([]models.Service, error)
}

// BookingFinder supplies the bookings made for one date.
type BookingFinder interface {
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
}

// Service answers availability queries against storage.
type Service struct {
	Catalog     ServiceCatalog
	Bookings    BookingFinder
	DefaultDate string
}

func NewService(catalog ServiceCatalog, bookings BookingFinder, defaultDate string) *Service {
	return &Service{Catalog: catalog, Bookings: bookings, DefaultDate: defaultDate}
}

// Available returns the catalog with each service's slots reduced to those
// still free on date. An empty date falls back to DefaultDate.
func (s *Service) Available(ctx context.Context, date string) ([]models.AvailabilityResult, error) {
	if date == "" {
		date = s.DefaultDate
	}

	services, err := s.Catalog.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	bookings, err := s.Bookings.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %q: %w", date, err)
	}

	utils.GetLogger().Debug("computing availability",
		zap.String("date", date),
		zap.Int("services", len(services)),
		zap.Int("bookings", len(bookings)))

	return ComputeAvailability(date, services, bookings), nil
}
