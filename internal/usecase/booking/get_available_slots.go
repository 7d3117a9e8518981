package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type GetAvailableSlots struct {
	repo   domain.Repository
	policy domain.OccupancyPolicy
	log    *zap.Logger
}

func NewGetAvailableSlots(
	repo domain.Repository,
	policy domain.OccupancyPolicy,
	log *zap.Logger,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:   repo,
		policy: policy,
		log:    log,
	}
}

// Execute lists the bookable start times of a service on a date. Every
// reason the date cannot be booked yields an empty list, never an error.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	empty := []string{}

	// --------------------------------------------------
	// 1. Blocked date
	// --------------------------------------------------
	blocked, err := uc.repo.IsDateBlocked(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	if blocked {
		return empty, nil
	}

	// --------------------------------------------------
	// 2. Opening hours of the weekday
	// --------------------------------------------------
	day, err := uc.repo.GetDayAvailability(ctx, int(in.Date.Weekday()))
	if errors.Is(err, domain.ErrNotFound) {
		return empty, nil
	}
	if err != nil {
		return nil, err
	}
	if !day.IsOpen {
		return empty, nil
	}

	// --------------------------------------------------
	// 3. Service duration
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if errors.Is(err, domain.ErrNotFound) {
		return empty, nil
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Times already held on that date
	// --------------------------------------------------
	bookings, err := uc.repo.ListBookingsByDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	taken := domain.TakenTimes(bookings, uc.policy.BlocksListing)

	// --------------------------------------------------
	// 5. Grid
	// --------------------------------------------------
	slots, err := domain.ComputeSlots(day, service.DurationMinutes, taken)
	if err != nil {
		uc.log.Warn("unusable availability window",
			zap.Int("day_of_week", day.DayOfWeek),
			zap.Uint("service_id", service.ID),
			zap.Error(err),
		)
		return empty, nil
	}

	return slots, nil
}
