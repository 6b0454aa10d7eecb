package availability

import (
	"maps"

	"doctorsportal/models"
)

// ComputeAvailability returns, for each service in order, a new result whose
// slots are the service slots minus those booked for that treatment on date.
// Dates are compared by exact string equality. Inputs are never modified.
func ComputeAvailability(date string, services []models.Service, bookings []models.Booking) []models.AvailabilityResult {
	booked := make(map[string]map[string]struct{})
	for _, b := range bookings {
		if b.Date != date {
			continue
		}
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	results := make([]models.AvailabilityResult, 0, len(services))
	for _, service := range services {
		taken := booked[service.Name]
		free := make([]string, 0, len(service.Slots))
		for _, slot := range service.Slots {
			if _, ok := taken[slot]; ok {
				continue
			}
			free = append(free, slot)
		}
		results = append(results, models.AvailabilityResult{
			ID:    service.ID,
			Name:  service.Name,
			Slots: free,
			Extra: maps.Clone(service.Extra),
		})
	}
	return results
}
