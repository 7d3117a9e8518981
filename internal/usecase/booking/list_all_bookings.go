package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ListAllBookings struct {
	repo domain.BookingStore
}

func NewListAllBookings(repo domain.BookingStore) *ListAllBookings {
	return &ListAllBookings{repo: repo}
}

func (uc *ListAllBookings) Execute(ctx context.Context) ([]models.Booking, error) {
	return uc.repo.ListAllBookings(ctx)
}
