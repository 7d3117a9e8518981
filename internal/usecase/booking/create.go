package booking

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/lock"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID uint
	Date      string
	Time      string

	ClientName  string
	ClientEmail string
	ClientPhone string

	// Nil when nobody is signed in.
	ClientID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	locker lock.SlotLocker
	audit  audit.Recorder
	policy domain.OccupancyPolicy
	log    *zap.Logger
}

func NewCreateBooking(
	repo domain.Repository,
	locker lock.SlotLocker,
	audit audit.Recorder,
	policy domain.OccupancyPolicy,
	log *zap.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		locker: locker,
		audit:  audit,
		policy: policy,
		log:    log,
	}
}

var errSlotTaken = httperr.ErrConflict("slot_taken", "Time slot already booked.")

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	email := strings.TrimSpace(in.ClientEmail)
	if !validators.IsEmail(email) {
		return nil, httperr.ErrValidation("invalid_email", "A valid email address is required.")
	}

	date, err := models.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date", "Date must be YYYY-MM-DD.")
	}

	if !validators.IsHHMM(in.Time) {
		return nil, httperr.ErrValidation("invalid_time", "Time must be HH:MM.")
	}

	name := strings.TrimSpace(in.ClientName)
	phone := strings.TrimSpace(in.ClientPhone)
	if len(name) > 100 || len(phone) > 20 {
		return nil, httperr.ErrValidation("contact_too_long", "Name or phone is too long.")
	}

	// --------------------------------------------------
	// 2. Service
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrValidation("service_not_found", "Service not found.")
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Slot critical section
	// --------------------------------------------------
	release, err := uc.locker.Acquire(ctx, lock.SlotKey(date.String(), in.Time))
	if errors.Is(err, lock.ErrBusy) {
		return nil, httperr.ErrConflict("slot_busy", "Time slot is being booked, try again.")
	}
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := uc.repo.ListBookingsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if _, held := domain.TakenTimes(existing, uc.policy.BlocksCreate)[in.Time]; held {
		uc.dispatchConflict(in, date)
		return nil, errSlotTaken
	}

	// --------------------------------------------------
	// 4. Insert
	// --------------------------------------------------
	b := &models.Booking{
		ClientID:        in.ClientID,
		ServiceID:       service.ID,
		AppointmentDate: date,
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
		ClientName:      name,
		ClientEmail:     email,
		ClientPhone:     phone,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			uc.dispatchConflict(in, date)
			return nil, errSlotTaken
		}
		return nil, err
	}
	b.Service = *service

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.ClientID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: audit.UintPtr(b.ID),
		Metadata: map[string]any{
			"service_id": service.ID,
			"date":       date.String(),
			"time":       in.Time,
		},
	})

	uc.log.Info("booking created",
		zap.Uint("booking_id", b.ID),
		zap.String("date", date.String()),
		zap.String("time", in.Time),
	)

	return b, nil
}

func (uc *CreateBooking) dispatchConflict(in CreateBookingInput, date models.Date) {
	uc.audit.Dispatch(audit.Event{
		UserID: in.ClientID,
		Action: audit.ActionBookingConflict,
		Entity: "booking",
		Metadata: map[string]any{
			"service_id": in.ServiceID,
			"date":       date.String(),
			"time":       in.Time,
		},
	})
}
