package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingGormRepository) UpsertUser(
	ctx context.Context,
	u *models.User,
) (*models.User, error) {

	var out models.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("open_id = ?", u.OpenID).First(&out).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			out = *u
			if out.Role == "" {
				out.Role = models.RoleUser
			}
			return tx.Create(&out).Error
		}
		if err != nil {
			return err
		}

		updates := map[string]any{"last_signed_in": u.LastSignedIn}
		if u.Name != "" {
			updates["name"] = u.Name
		}
		if u.Email != "" {
			updates["email"] = u.Email
		}
		if u.LoginMethod != "" {
			updates["login_method"] = u.LoginMethod
		}
		if u.PasswordHash != "" {
			updates["password_hash"] = u.PasswordHash
		}

		if err := tx.Model(&out).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&out, out.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *BookingGormRepository) GetUserByOpenID(
	ctx context.Context,
	openID string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("open_id = ?", openID).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *BookingGormRepository) UpdateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).
		Model(u).
		Select("name", "phone", "email").
		Updates(u).Error
}

func (r *BookingGormRepository) SetUserRole(
	ctx context.Context,
	openID string,
	role string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("open_id = ?", openID).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *BookingGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// --------------------------------------------------
// Availability / Blocked dates
// --------------------------------------------------

func (r *BookingGormRepository) GetDayAvailability(
	ctx context.Context,
	dayOfWeek int,
) (*models.DayAvailability, error) {

	var day models.DayAvailability
	if err := r.db.WithContext(ctx).
		Where("day_of_week = ?", dayOfWeek).
		First(&day).Error; err != nil {
		return nil, notFound(err)
	}
	return &day, nil
}

func (r *BookingGormRepository) ListAvailability(
	ctx context.Context,
) ([]models.DayAvailability, error) {

	var days []models.DayAvailability
	if err := r.db.WithContext(ctx).
		Order("day_of_week ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (r *BookingGormRepository) ReplaceAvailability(
	ctx context.Context,
	days []models.DayAvailability,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceWeek(tx, days)
	})
}

// replaceWeek writes every column explicitly so a closed day keeps
// is_open = false.
func replaceWeek(tx *gorm.DB, days []models.DayAvailability) error {
	if err := tx.Where("1 = 1").Delete(&models.DayAvailability{}).Error; err != nil {
		return err
	}
	if len(days) == 0 {
		return nil
	}
	return tx.Select("DayOfWeek", "StartTime", "EndTime", "IsOpen", "CreatedAt").Create(&days).Error
}

func (r *BookingGormRepository) IsDateBlocked(
	ctx context.Context,
	date models.Date,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BlockedDate{}).
		Where("date = ?", date).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) ListBlockedDates(
	ctx context.Context,
) ([]models.BlockedDate, error) {

	var dates []models.BlockedDate
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *BookingGormRepository) CreateBlockedDate(
	ctx context.Context,
	bd *models.BlockedDate,
) error {

	if err := r.db.WithContext(ctx).Create(bd).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) DeleteBlockedDate(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.BlockedDate{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Omit("Service").Create(b).Error; err != nil {
		// idx_bookings_active_slot
		if httperr.IsUniqueViolation(err) {
			return domain.ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&b, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).
		Omit("Service").
		Save(b).Error
	if httperr.IsUniqueViolation(err) {
		return domain.ErrSlotTaken
	}
	return err
}

func (r *BookingGormRepository) ListBookingsByDate(
	ctx context.Context,
	date models.Date,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("appointment_date = ?", date).
		Order("appointment_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListClientBookingsFrom(
	ctx context.Context,
	clientID uint,
	from models.Date,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("client_id = ? AND appointment_date >= ?", clientID, from).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListAllBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Order("appointment_date DESC, appointment_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsByStatus(
	ctx context.Context,
	status domain.Status,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsNeedingReminder(
	ctx context.Context,
	date models.Date,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"appointment_date = ? AND status = ? AND reminder_sent = ?",
			date, string(domain.StatusConfirmed), false,
		).
		Order("appointment_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) MarkReminderSent(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("reminder_sent", true).Error
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

func (r *BookingGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {

	if err := r.db.WithContext(ctx).Create(rv).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) ListReviews(
	ctx context.Context,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *BookingGormRepository) HasReview(
	ctx context.Context,
	bookingID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Gallery
// --------------------------------------------------

func (r *BookingGormRepository) ListGallery(
	ctx context.Context,
) ([]models.GalleryImage, error) {

	var images []models.GalleryImage
	if err := r.db.WithContext(ctx).
		Order("display_order ASC, id ASC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *BookingGormRepository) CreateGalleryImage(
	ctx context.Context,
	img *models.GalleryImage,
) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *BookingGormRepository) GetGalleryImage(
	ctx context.Context,
	id uint,
) (*models.GalleryImage, error) {

	var img models.GalleryImage
	if err := r.db.WithContext(ctx).First(&img, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &img, nil
}

func (r *BookingGormRepository) DeleteGalleryImage(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.GalleryImage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *BookingGormRepository) CreateAuditLog(
	ctx context.Context,
	l *models.AuditLog,
) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *BookingGormRepository) ListAuditLogs(
	ctx context.Context,
	f domain.AuditFilter,
) ([]models.AuditLog, int64, error) {

	query := r.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		query = query.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		query = query.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		query = query.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		query = query.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := query.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
