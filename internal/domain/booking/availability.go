package booking

import (
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// SlotStepMinutes is the fixed grid of bookable start times.
const SlotStepMinutes = 30

const minutesPerDay = 24 * 60

type AvailabilityInput struct {
	Date      models.Date
	ServiceID uint
}

// ParseHM converts a zero-padded "HH:MM" into minutes since midnight.
// "24:00" is accepted as the end of the day.
func ParseHM(hm string) (int, error) {
	if len(hm) != 5 || hm[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", hm)
	}
	h, okH := twoDigits(hm[0], hm[1])
	m, okM := twoDigits(hm[3], hm[4])
	if !okH || !okM || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", hm)
	}
	return h*60 + m, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

func FormatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ComputeSlots walks the opening window in SlotStepMinutes increments and
// returns every start time whose service still ends by closing time and
// that is not already taken. Result is ascending.
func ComputeSlots(day *models.DayAvailability, durationMinutes int, taken map[string]struct{}) ([]string, error) {
	slots := []string{}
	if day == nil || !day.IsOpen {
		return slots, nil
	}

	open, err := ParseHM(day.StartTime)
	if err != nil {
		return slots, err
	}
	closing, err := ParseHM(day.EndTime)
	if err != nil {
		return slots, err
	}
	if durationMinutes <= 0 {
		return slots, fmt.Errorf("invalid service duration %d", durationMinutes)
	}
	if closing > minutesPerDay {
		closing = minutesPerDay
	}

	for start := open; start+durationMinutes <= closing; start += SlotStepMinutes {
		hm := FormatHM(start)
		if _, ok := taken[hm]; ok {
			continue
		}
		slots = append(slots, hm)
	}

	return slots, nil
}
