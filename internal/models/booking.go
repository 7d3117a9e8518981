package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Nil for bookings made without a signed-in client.
	ClientID  *uint   `gorm:"index" json:"client_id"`
	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	// At most one non-cancelled booking per date and time.
	AppointmentDate Date   `gorm:"not null;index;index:idx_bookings_active_slot,unique,where:status <> 'cancelled'" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null;index:idx_bookings_active_slot,unique,where:status <> 'cancelled'" json:"appointment_time"`

	Status string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	ClientName  string `gorm:"size:100" json:"client_name"`
	ClientEmail string `gorm:"size:320" json:"client_email"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	Notes        string `gorm:"type:text" json:"notes"`
	ReminderSent bool   `gorm:"not null;default:false" json:"reminder_sent"`
	DepositPaid  bool   `gorm:"not null;default:false" json:"deposit_paid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedBy reports whether the booking was made by the given user.
func (b *Booking) OwnedBy(userID uint) bool {
	return b.ClientID != nil && *b.ClientID == userID
}
