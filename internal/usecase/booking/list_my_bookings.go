package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type ListMyBookings struct {
	repo domain.BookingStore
	loc  *time.Location
	now  func() time.Time
}

func NewListMyBookings(repo domain.BookingStore, loc *time.Location) *ListMyBookings {
	return &ListMyBookings{repo: repo, loc: loc, now: time.Now}
}

// Execute returns the client's bookings from today (shop time) onward,
// earliest first.
func (uc *ListMyBookings) Execute(ctx context.Context, clientID uint) ([]models.Booking, error) {
	return uc.repo.ListClientBookingsFrom(ctx, clientID, timezone.Today(uc.loc, uc.now()))
}
