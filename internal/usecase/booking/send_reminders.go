package booking

import (
	"context"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type SendReminders struct {
	repo     domain.BookingStore
	notifier notify.Notifier
	audit    audit.Recorder
	loc      *time.Location
	log      *zap.Logger
	now      func() time.Time
}

func NewSendReminders(
	repo domain.BookingStore,
	notifier notify.Notifier,
	audit audit.Recorder,
	loc *time.Location,
	log *zap.Logger,
) *SendReminders {
	return &SendReminders{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		loc:      loc,
		log:      log,
		now:      time.Now,
	}
}

// Execute notifies every confirmed booking of tomorrow (shop time) that
// has not been reminded yet. It returns how many reminders went out.
// A failed delivery leaves the booking unmarked for the next run.
func (uc *SendReminders) Execute(ctx context.Context) (int, error) {
	tomorrow := timezone.Today(uc.loc, uc.now()).AddDays(1)

	due, err := uc.repo.ListBookingsNeedingReminder(ctx, tomorrow)
	if err != nil {
		return 0, err
	}

	var errs error
	sent := 0

	for _, b := range due {
		if err := uc.notifier.SendReminder(ctx, b); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if err := uc.repo.MarkReminderSent(ctx, b.ID); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		sent++

		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionReminderSent,
			Entity:   "booking",
			EntityID: audit.UintPtr(b.ID),
		})
	}

	if sent > 0 {
		uc.log.Info("reminders sent", zap.Int("count", sent), zap.String("date", tomorrow.String()))
	}

	return sent, errs
}
