package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// BookingMemoryRepository keeps every record in process memory. It backs
// STORE=memory and the package tests, and enforces the same unique
// constraints as the postgres schema.
type BookingMemoryRepository struct {
	mu     sync.RWMutex
	nextID uint

	users    map[uint]models.User
	services map[uint]models.Service
	days     map[int]models.DayAvailability
	blocked  map[uint]models.BlockedDate
	bookings map[uint]models.Booking
	reviews  map[uint]models.Review
	gallery  map[uint]models.GalleryImage
	audit    []models.AuditLog

	now func() time.Time
}

func NewBookingMemoryRepository() *BookingMemoryRepository {
	return &BookingMemoryRepository{
		users:    map[uint]models.User{},
		services: map[uint]models.Service{},
		days:     map[int]models.DayAvailability{},
		blocked:  map[uint]models.BlockedDate{},
		bookings: map[uint]models.Booking{},
		reviews:  map[uint]models.Review{},
		gallery:  map[uint]models.GalleryImage{},
		now:      time.Now,
	}
}

func (r *BookingMemoryRepository) id() uint {
	r.nextID++
	return r.nextID
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingMemoryRepository) UpsertUser(_ context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.users {
		if existing.OpenID != u.OpenID {
			continue
		}
		if u.Name != "" {
			existing.Name = u.Name
		}
		if u.Email != "" {
			existing.Email = u.Email
		}
		if u.LoginMethod != "" {
			existing.LoginMethod = u.LoginMethod
		}
		if u.PasswordHash != "" {
			existing.PasswordHash = u.PasswordHash
		}
		existing.LastSignedIn = u.LastSignedIn
		existing.UpdatedAt = r.now()
		r.users[id] = existing
		return &existing, nil
	}

	created := *u
	created.ID = r.id()
	if created.Role == "" {
		created.Role = models.RoleUser
	}
	created.CreatedAt = r.now()
	created.UpdatedAt = created.CreatedAt
	r.users[created.ID] = created
	u.ID = created.ID
	return &created, nil
}

func (r *BookingMemoryRepository) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *BookingMemoryRepository) GetUserByOpenID(_ context.Context, openID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.OpenID == openID {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *BookingMemoryRepository) UpdateUser(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[u.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Name = u.Name
	existing.Phone = u.Phone
	existing.Email = u.Email
	existing.UpdatedAt = r.now()
	r.users[u.ID] = existing
	return nil
}

func (r *BookingMemoryRepository) SetUserRole(_ context.Context, openID string, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, u := range r.users {
		if u.OpenID == openID {
			u.Role = role
			r.users[id] = u
			return nil
		}
	}
	return domain.ErrNotFound
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingMemoryRepository) ListServices(_ context.Context) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *BookingMemoryRepository) GetService(_ context.Context, id uint) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *BookingMemoryRepository) CreateService(_ context.Context, s *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.id()
	if s.DurationMinutes == 0 {
		s.DurationMinutes = 30
	}
	s.CreatedAt = r.now()
	r.services[s.ID] = *s
	return nil
}

// --------------------------------------------------
// Availability / Blocked dates
// --------------------------------------------------

func (r *BookingMemoryRepository) GetDayAvailability(_ context.Context, dayOfWeek int) (*models.DayAvailability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.days[dayOfWeek]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (r *BookingMemoryRepository) ListAvailability(_ context.Context) ([]models.DayAvailability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.DayAvailability, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	return out, nil
}

func (r *BookingMemoryRepository) ReplaceAvailability(_ context.Context, days []models.DayAvailability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := map[int]bool{}
	for _, d := range days {
		if seen[d.DayOfWeek] {
			return domain.ErrDuplicate
		}
		seen[d.DayOfWeek] = true
	}

	r.days = make(map[int]models.DayAvailability, len(days))
	for i := range days {
		days[i].ID = r.id()
		days[i].CreatedAt = r.now()
		r.days[days[i].DayOfWeek] = days[i]
	}
	return nil
}

func (r *BookingMemoryRepository) IsDateBlocked(_ context.Context, date models.Date) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, bd := range r.blocked {
		if bd.Date.Equal(date.Time) {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookingMemoryRepository) ListBlockedDates(_ context.Context) ([]models.BlockedDate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.BlockedDate, 0, len(r.blocked))
	for _, bd := range r.blocked {
		out = append(out, bd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	return out, nil
}

func (r *BookingMemoryRepository) CreateBlockedDate(_ context.Context, bd *models.BlockedDate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.blocked {
		if existing.Date.Equal(bd.Date.Time) {
			return domain.ErrDuplicate
		}
	}
	bd.ID = r.id()
	bd.CreatedAt = r.now()
	r.blocked[bd.ID] = *bd
	return nil
}

func (r *BookingMemoryRepository) DeleteBlockedDate(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blocked[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.blocked, id)
	return nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

// slotTaken mirrors idx_bookings_active_slot.
func (r *BookingMemoryRepository) slotTaken(b *models.Booking) bool {
	if domain.Status(b.Status) == domain.StatusCancelled {
		return false
	}
	for _, other := range r.bookings {
		if other.ID == b.ID || domain.Status(other.Status) == domain.StatusCancelled {
			continue
		}
		if other.AppointmentDate.Equal(b.AppointmentDate.Time) && other.AppointmentTime == b.AppointmentTime {
			return true
		}
	}
	return false
}

func (r *BookingMemoryRepository) withService(b models.Booking) models.Booking {
	if s, ok := r.services[b.ServiceID]; ok {
		b.Service = s
	}
	return b
}

func (r *BookingMemoryRepository) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slotTaken(b) {
		return domain.ErrSlotTaken
	}

	b.ID = r.id()
	if b.Status == "" {
		b.Status = string(domain.StatusPending)
	}
	b.CreatedAt = r.now()
	b.UpdatedAt = b.CreatedAt

	stored := *b
	stored.Service = models.Service{}
	r.bookings[b.ID] = stored
	return nil
}

func (r *BookingMemoryRepository) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b = r.withService(b)
	return &b, nil
}

func (r *BookingMemoryRepository) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[b.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.slotTaken(b) {
		return domain.ErrSlotTaken
	}

	b.UpdatedAt = r.now()
	stored := *b
	stored.Service = models.Service{}
	r.bookings[b.ID] = stored
	return nil
}

func (r *BookingMemoryRepository) filter(keep func(models.Booking) bool) []models.Booking {
	out := []models.Booking{}
	for _, b := range r.bookings {
		if keep(b) {
			out = append(out, r.withService(b))
		}
	}
	return out
}

func byDateTime(bookings []models.Booking, desc bool) {
	sort.Slice(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if !a.AppointmentDate.Equal(b.AppointmentDate.Time) {
			if desc {
				return a.AppointmentDate.After(b.AppointmentDate.Time)
			}
			return a.AppointmentDate.Before(b.AppointmentDate.Time)
		}
		if desc {
			return a.AppointmentTime > b.AppointmentTime
		}
		return a.AppointmentTime < b.AppointmentTime
	})
}

func (r *BookingMemoryRepository) ListBookingsByDate(_ context.Context, date models.Date) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.filter(func(b models.Booking) bool { return b.AppointmentDate.Equal(date.Time) })
	byDateTime(out, false)
	return out, nil
}

func (r *BookingMemoryRepository) ListClientBookingsFrom(_ context.Context, clientID uint, from models.Date) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.filter(func(b models.Booking) bool {
		return b.OwnedBy(clientID) && !b.AppointmentDate.Before(from.Time)
	})
	byDateTime(out, false)
	return out, nil
}

func (r *BookingMemoryRepository) ListAllBookings(_ context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.filter(func(models.Booking) bool { return true })
	byDateTime(out, true)
	return out, nil
}

func (r *BookingMemoryRepository) ListBookingsByStatus(_ context.Context, status domain.Status) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.filter(func(b models.Booking) bool { return domain.Status(b.Status) == status })
	byDateTime(out, false)
	return out, nil
}

func (r *BookingMemoryRepository) ListBookingsNeedingReminder(_ context.Context, date models.Date) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.filter(func(b models.Booking) bool {
		return b.AppointmentDate.Equal(date.Time) &&
			domain.Status(b.Status) == domain.StatusConfirmed &&
			!b.ReminderSent
	})
	byDateTime(out, false)
	return out, nil
}

func (r *BookingMemoryRepository) MarkReminderSent(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.ReminderSent = true
	r.bookings[id] = b
	return nil
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

func (r *BookingMemoryRepository) CreateReview(_ context.Context, rv *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reviews {
		if existing.BookingID == rv.BookingID {
			return domain.ErrDuplicate
		}
	}
	rv.ID = r.id()
	rv.CreatedAt = r.now()
	r.reviews[rv.ID] = *rv
	return nil
}

func (r *BookingMemoryRepository) ListReviews(_ context.Context) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Review, 0, len(r.reviews))
	for _, rv := range r.reviews {
		out = append(out, rv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *BookingMemoryRepository) HasReview(_ context.Context, bookingID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rv := range r.reviews {
		if rv.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

// --------------------------------------------------
// Gallery
// --------------------------------------------------

func (r *BookingMemoryRepository) ListGallery(_ context.Context) ([]models.GalleryImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.GalleryImage, 0, len(r.gallery))
	for _, img := range r.gallery {
		out = append(out, img)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *BookingMemoryRepository) CreateGalleryImage(_ context.Context, img *models.GalleryImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	img.ID = r.id()
	img.CreatedAt = r.now()
	r.gallery[img.ID] = *img
	return nil
}

func (r *BookingMemoryRepository) GetGalleryImage(_ context.Context, id uint) (*models.GalleryImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	img, ok := r.gallery[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &img, nil
}

func (r *BookingMemoryRepository) DeleteGalleryImage(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.gallery[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.gallery, id)
	return nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *BookingMemoryRepository) CreateAuditLog(_ context.Context, l *models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l.ID = r.id()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = r.now()
	}
	r.audit = append(r.audit, *l)
	return nil
}

func (r *BookingMemoryRepository) ListAuditLogs(_ context.Context, f domain.AuditFilter) ([]models.AuditLog, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []models.AuditLog{}
	for i := len(r.audit) - 1; i >= 0; i-- {
		l := r.audit[i]
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if f.From != nil && l.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !l.CreatedAt.Before(*f.To) {
			continue
		}
		matched = append(matched, l)
	}

	total := int64(len(matched))
	if f.Offset >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

var _ domain.Repository = (*BookingMemoryRepository)(nil)
