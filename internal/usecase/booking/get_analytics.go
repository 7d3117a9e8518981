package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type GetAnalytics struct {
	repo domain.BookingStore
}

func NewGetAnalytics(repo domain.BookingStore) *GetAnalytics {
	return &GetAnalytics{repo: repo}
}

func (uc *GetAnalytics) Execute(ctx context.Context) (domain.Analytics, error) {
	confirmed, err := uc.repo.ListBookingsByStatus(ctx, domain.StatusConfirmed)
	if err != nil {
		return domain.Analytics{}, err
	}
	return domain.Aggregate(confirmed), nil
}
