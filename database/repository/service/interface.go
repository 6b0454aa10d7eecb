package serviceRepo

import (
	"context"

	"doctorsportal/models"
)

// ServiceRepository defines read access to the service catalog.
type ServiceRepository interface {
	// FindAll returns every service document.
	FindAll(ctx context.Context) ([]models.Service, error)
	// FindNames returns only the id and name of every service.
	FindNames(ctx context.Context) ([]models.ServiceName, error)
	// FindByName returns the named service, or nil when it does not exist.
	FindByName(ctx context.Context, name string) (*models.Service, error)
}
