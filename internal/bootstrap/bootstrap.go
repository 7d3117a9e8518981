// Package bootstrap prepares a fresh shop: default catalogue, opening
// hours and the owner's admin role.
package bootstrap

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func price(cents int) *int { return &cents }

func DefaultServices() []models.Service {
	return []models.Service{
		{Name: "Basic Haircut", Description: "Classic haircut with styling", DurationMinutes: 30, Price: price(2500)},
		{Name: "Beard Trim", Description: "Professional beard trimming and shaping", DurationMinutes: 20, Price: price(1500)},
		{Name: "Haircut + Beard", Description: "Complete grooming package", DurationMinutes: 45, Price: price(3500)},
	}
}

// DefaultWeek is closed on Sunday, 09-18 on weekdays and 09-17 on Saturday.
func DefaultWeek() []models.DayAvailability {
	week := []models.DayAvailability{{DayOfWeek: 0, StartTime: "00:00", EndTime: "00:00", IsOpen: false}}
	for d := 1; d <= 5; d++ {
		week = append(week, models.DayAvailability{DayOfWeek: d, StartTime: "09:00", EndTime: "18:00", IsOpen: true})
	}
	return append(week, models.DayAvailability{DayOfWeek: 6, StartTime: "09:00", EndTime: "17:00", IsOpen: true})
}

// Seed inserts the default services and week when the store has none.
func Seed(ctx context.Context, repo domain.Repository, log *zap.Logger) error {
	services, err := repo.ListServices(ctx)
	if err != nil {
		return err
	}
	if len(services) == 0 {
		for _, s := range DefaultServices() {
			s := s
			if err := repo.CreateService(ctx, &s); err != nil {
				return err
			}
		}
		log.Info("seeded services", zap.Int("count", len(DefaultServices())))
	}

	week, err := repo.ListAvailability(ctx)
	if err != nil {
		return err
	}
	if len(week) == 0 {
		if err := repo.ReplaceAvailability(ctx, DefaultWeek()); err != nil {
			return err
		}
		log.Info("seeded weekly availability")
	}

	return nil
}

// EnsureOwner grants the admin role to the user identified by openID.
// An owner who has never signed in is created as a placeholder so the
// role is already in place on first login.
func EnsureOwner(
	ctx context.Context,
	repo domain.UserStore,
	rec audit.Recorder,
	openID string,
	log *zap.Logger,
) error {

	if openID == "" {
		return nil
	}

	u, err := repo.GetUserByOpenID(ctx, openID)
	if errors.Is(err, domain.ErrNotFound) {
		u, err = repo.UpsertUser(ctx, &models.User{OpenID: openID, Role: models.RoleAdmin})
		if err != nil {
			return err
		}
		log.Info("owner placeholder created", zap.String("open_id", openID))
	} else if err != nil {
		return err
	}

	if u.IsAdmin() {
		return nil
	}

	if err := repo.SetUserRole(ctx, openID, models.RoleAdmin); err != nil {
		return err
	}

	rec.Dispatch(audit.Event{
		Action:   audit.ActionOwnerPromoted,
		Entity:   "user",
		EntityID: audit.UintPtr(u.ID),
	})
	log.Info("owner promoted to admin", zap.String("open_id", openID))

	return nil
}
