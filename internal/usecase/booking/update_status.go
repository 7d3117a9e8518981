package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type UpdateBookingStatusInput struct {
	AdminID   uint
	BookingID uint
	Status    string
	Notes     string
}

type UpdateBookingStatus struct {
	repo  domain.BookingStore
	audit audit.Recorder
}

func NewUpdateBookingStatus(
	repo domain.BookingStore,
	audit audit.Recorder,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute overwrites the status with any of the four values, including
// moves out of cancelled or no-show. Notes are replaced only when given.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	in UpdateBookingStatusInput,
) (*models.Booking, error) {

	status, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("booking_not_found", "Booking not found.")
	}
	if err != nil {
		return nil, err
	}

	previous := domain.Status(b.Status)
	b.Status = string(status)
	if notes := strings.TrimSpace(in.Notes); notes != "" {
		b.Notes = notes
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			return nil, httperr.ErrConflict("slot_taken", "Another active booking holds this time slot.")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.AdminID,
		Action:   audit.ActionBookingStatusUpdated,
		Entity:   "booking",
		EntityID: audit.UintPtr(b.ID),
		Metadata: map[string]any{
			"from":      previous,
			"to":        status,
			"lifecycle": domain.IsLifecycleTransition(previous, status),
		},
	})

	return b, nil
}
