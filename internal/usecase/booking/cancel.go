package booking

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CancelBooking struct {
	repo  domain.BookingStore
	audit audit.Recorder
	loc   *time.Location
	now   func() time.Time
}

func NewCancelBooking(
	repo domain.BookingStore,
	audit audit.Recorder,
	loc *time.Location,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		loc:   loc,
		now:   time.Now,
	}
}

// Execute cancels a booking on behalf of its own client. Admins have no
// exemption here; they change statuses through UpdateBookingStatus.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("booking_not_found", "Booking not found.")
	}
	if err != nil {
		return nil, err
	}

	if !b.OwnedBy(userID) {
		return nil, httperr.ErrForbidden("not_booking_owner", "Cannot cancel other users bookings.")
	}

	if err := domain.CheckCancellationWindow(b.AppointmentDate, uc.loc, uc.now()); err != nil {
		return nil, err
	}

	previous := b.Status
	b.Status = string(domain.StatusCancelled)

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionBookingCancelled,
		Entity:   "booking",
		EntityID: audit.UintPtr(b.ID),
		Metadata: map[string]any{"from": previous},
	})

	return b, nil
}
