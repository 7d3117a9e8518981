package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ErrNotFound is returned by every lookup that finds no record.
var ErrNotFound = errors.New("record not found")

// ErrSlotTaken is returned by CreateBooking when another non-cancelled
// booking already holds the same date and time.
var ErrSlotTaken = errors.New("slot already taken")

// ErrDuplicate is returned when a unique record already exists.
var ErrDuplicate = errors.New("duplicate record")

type UserStore interface {
	// UpsertUser inserts or merges by OpenID. Role is only written on insert.
	UpsertUser(ctx context.Context, u *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByOpenID(ctx context.Context, openID string) (*models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error
	SetUserRole(ctx context.Context, openID string, role string) error
}

type ServiceStore interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
}

type ScheduleStore interface {
	GetDayAvailability(ctx context.Context, dayOfWeek int) (*models.DayAvailability, error)
	ListAvailability(ctx context.Context) ([]models.DayAvailability, error)
	ReplaceAvailability(ctx context.Context, days []models.DayAvailability) error

	IsDateBlocked(ctx context.Context, date models.Date) (bool, error)
	ListBlockedDates(ctx context.Context) ([]models.BlockedDate, error)
	CreateBlockedDate(ctx context.Context, bd *models.BlockedDate) error
	DeleteBlockedDate(ctx context.Context, id uint) error
}

type BookingStore interface {
	CreateBooking(ctx context.Context, b *models.Booking) error
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	UpdateBooking(ctx context.Context, b *models.Booking) error

	// ListBookingsByDate returns bookings of any status on date.
	ListBookingsByDate(ctx context.Context, date models.Date) ([]models.Booking, error)
	// ListClientBookingsFrom returns the client's bookings on or after from, date ascending.
	ListClientBookingsFrom(ctx context.Context, clientID uint, from models.Date) ([]models.Booking, error)
	// ListAllBookings returns every booking, date descending.
	ListAllBookings(ctx context.Context) ([]models.Booking, error)
	ListBookingsByStatus(ctx context.Context, status Status) ([]models.Booking, error)

	ListBookingsNeedingReminder(ctx context.Context, date models.Date) ([]models.Booking, error)
	MarkReminderSent(ctx context.Context, id uint) error
}

type ReviewStore interface {
	CreateReview(ctx context.Context, r *models.Review) error
	ListReviews(ctx context.Context) ([]models.Review, error)
	HasReview(ctx context.Context, bookingID uint) (bool, error)
}

type GalleryStore interface {
	ListGallery(ctx context.Context) ([]models.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, img *models.GalleryImage) error
	GetGalleryImage(ctx context.Context, id uint) (*models.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id uint) error
}

type AuditStore interface {
	CreateAuditLog(ctx context.Context, l *models.AuditLog) error
	ListAuditLogs(ctx context.Context, f AuditFilter) ([]models.AuditLog, int64, error)
}

// Repository is the record store behind every booking flow.
type Repository interface {
	UserStore
	ServiceStore
	ScheduleStore
	BookingStore
	ReviewStore
	GalleryStore
	AuditStore
}
