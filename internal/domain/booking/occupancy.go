package booking

import "github.com/BruksfildServices01/barber-booking/internal/models"

// OccupancyPolicy decides which bookings hold a (date, time) slot.
//
// Creation always ignores cancelled bookings. Listing, unless
// ReleaseCancelled is set, hides a time held by a booking of any status.
type OccupancyPolicy struct {
	ReleaseCancelled bool
}

func (p OccupancyPolicy) BlocksListing(status Status) bool {
	if p.ReleaseCancelled {
		return p.BlocksCreate(status)
	}
	return true
}

func (OccupancyPolicy) BlocksCreate(status Status) bool {
	return status != StatusCancelled
}

// TakenTimes collects the appointment times held according to blocks.
func TakenTimes(bookings []models.Booking, blocks func(Status) bool) map[string]struct{} {
	taken := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if blocks(Status(b.Status)) {
			taken[b.AppointmentTime] = struct{}{}
		}
	}
	return taken
}
