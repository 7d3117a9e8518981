package booking

import (
	"strconv"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Analytics struct {
	TotalBookings       int            `json:"totalBookings"`
	BookingsByDayOfWeek map[string]int `json:"bookingsByDayOfWeek"`
}

// Aggregate counts confirmed bookings and buckets them by the weekday
// (0=Sunday) of their appointment date. All seven buckets are present.
func Aggregate(bookings []models.Booking) Analytics {
	out := Analytics{BookingsByDayOfWeek: make(map[string]int, 7)}
	for d := 0; d < 7; d++ {
		out.BookingsByDayOfWeek[strconv.Itoa(d)] = 0
	}

	for _, b := range bookings {
		if Status(b.Status) != StatusConfirmed {
			continue
		}
		out.TotalBookings++
		out.BookingsByDayOfWeek[strconv.Itoa(int(b.AppointmentDate.Weekday()))]++
	}

	return out
}
