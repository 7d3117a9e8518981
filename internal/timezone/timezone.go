package timezone

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to DefaultTimezone when it is empty
// or unknown.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	return time.UTC
}

// Today is the calendar date of now as seen from loc.
func Today(loc *time.Location, now time.Time) models.Date {
	return models.DateOf(now.In(loc))
}
