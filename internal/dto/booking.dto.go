package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BookingDTO struct {
	ID              uint        `json:"id"`
	ClientID        *uint       `json:"client_id"`
	ServiceID       uint        `json:"service_id"`
	ServiceName     string      `json:"service_name"`
	DurationMinutes int         `json:"duration_minutes"`
	Price           *int        `json:"price,omitempty"`
	AppointmentDate models.Date `json:"appointment_date"`
	AppointmentTime string      `json:"appointment_time"`
	Status          string      `json:"status"`
	ClientName      string      `json:"client_name"`
	ClientEmail     string      `json:"client_email"`
	ClientPhone     string      `json:"client_phone"`
	Notes           string      `json:"notes"`
	ReminderSent    bool        `json:"reminder_sent"`
	DepositPaid     bool        `json:"deposit_paid"`
	CreatedAt       time.Time   `json:"created_at"`
}

func NewBookingDTO(b models.Booking) BookingDTO {
	return BookingDTO{
		ID:              b.ID,
		ClientID:        b.ClientID,
		ServiceID:       b.ServiceID,
		ServiceName:     b.Service.Name,
		DurationMinutes: b.Service.DurationMinutes,
		Price:           b.Service.Price,
		AppointmentDate: b.AppointmentDate,
		AppointmentTime: b.AppointmentTime,
		Status:          b.Status,
		ClientName:      b.ClientName,
		ClientEmail:     b.ClientEmail,
		ClientPhone:     b.ClientPhone,
		Notes:           b.Notes,
		ReminderSent:    b.ReminderSent,
		DepositPaid:     b.DepositPaid,
		CreatedAt:       b.CreatedAt,
	}
}

func NewBookingList(bookings []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, NewBookingDTO(b))
	}
	return out
}
