package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const CancellationNotice = 24 * time.Hour

// CheckCancellationWindow rejects a client cancellation made less than
// CancellationNotice before the appointment. Only the appointment date is
// considered: the deadline is measured from 00:00 of that date in loc.
func CheckCancellationWindow(date models.Date, loc *time.Location, now time.Time) error {
	if date.In(loc).Sub(now) < CancellationNotice {
		return httperr.ErrValidation("cancellation_window", "Cannot cancel within 24 hours of appointment.")
	}
	return nil
}
