package booking

import (
	"context"
	"testing"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func contains(slots []string, hm string) bool {
	for _, s := range slots {
		if s == hm {
			return true
		}
	}
	return false
}

func TestGetAvailableSlots_Scenarios(t *testing.T) {
	ctx := context.Background()
	repo, cut, combo := seededRepo(t)
	monday := mustDate(t, "2026-10-19")

	uc := NewGetAvailableSlots(repo, domain.OccupancyPolicy{}, zap.NewNop())

	t.Run("monday 30 minute service", func(t *testing.T) {
		slots, err := uc.Execute(ctx, domain.AvailabilityInput{Date: monday, ServiceID: cut.ID})
		if err != nil {
			t.Fatal(err)
		}
		if len(slots) != 18 || slots[0] != "09:00" || slots[17] != "17:30" {
			t.Errorf("unexpected slots %v", slots)
		}
	})

	t.Run("monday 45 minute service", func(t *testing.T) {
		slots, _ := uc.Execute(ctx, domain.AvailabilityInput{Date: monday, ServiceID: combo.ID})
		if len(slots) != 17 || slots[16] != "17:00" {
			t.Errorf("unexpected slots %v", slots)
		}
	})

	t.Run("sunday is closed", func(t *testing.T) {
		slots, err := uc.Execute(ctx, domain.AvailabilityInput{Date: mustDate(t, "2026-10-18"), ServiceID: cut.ID})
		if err != nil || slots == nil || len(slots) != 0 {
			t.Errorf("expected empty list, got %v (%v)", slots, err)
		}
	})

	t.Run("unknown service is silent", func(t *testing.T) {
		slots, err := uc.Execute(ctx, domain.AvailabilityInput{Date: monday, ServiceID: 999})
		if err != nil || len(slots) != 0 {
			t.Errorf("expected empty list, got %v (%v)", slots, err)
		}
	})

	t.Run("blocked date", func(t *testing.T) {
		tuesday := mustDate(t, "2026-10-20")
		if err := repo.CreateBlockedDate(ctx, &models.BlockedDate{Date: tuesday, Reason: "holiday"}); err != nil {
			t.Fatal(err)
		}
		slots, err := uc.Execute(ctx, domain.AvailabilityInput{Date: tuesday, ServiceID: cut.ID})
		if err != nil || len(slots) != 0 {
			t.Errorf("expected empty list, got %v (%v)", slots, err)
		}
	})
}

func TestGetAvailableSlots_OccupancyPolicy(t *testing.T) {
	ctx := context.Background()
	repo, cut, _ := seededRepo(t)
	monday := mustDate(t, "2026-10-19")

	insertBooking(t, repo, models.Booking{ServiceID: cut.ID, AppointmentDate: monday, AppointmentTime: "10:00", Status: string(domain.StatusPending)})
	insertBooking(t, repo, models.Booking{ServiceID: cut.ID, AppointmentDate: monday, AppointmentTime: "11:00", Status: string(domain.StatusCancelled)})

	def := NewGetAvailableSlots(repo, domain.OccupancyPolicy{}, zap.NewNop())
	slots, _ := def.Execute(ctx, domain.AvailabilityInput{Date: monday, ServiceID: cut.ID})
	if contains(slots, "10:00") || contains(slots, "11:00") {
		t.Errorf("default policy hides any booked time, got %v", slots)
	}

	released := NewGetAvailableSlots(repo, domain.OccupancyPolicy{ReleaseCancelled: true}, zap.NewNop())
	slots, _ = released.Execute(ctx, domain.AvailabilityInput{Date: monday, ServiceID: cut.ID})
	if contains(slots, "10:00") || !contains(slots, "11:00") {
		t.Errorf("released policy offers cancelled times again, got %v", slots)
	}
}

func TestGetAvailableSlots_BrokenWindow(t *testing.T) {
	ctx := context.Background()
	repo, cut, _ := seededRepo(t)

	if err := repo.ReplaceAvailability(ctx, []models.DayAvailability{{DayOfWeek: 1, StartTime: "9h", EndTime: "18:00", IsOpen: true}}); err != nil {
		t.Fatal(err)
	}

	uc := NewGetAvailableSlots(repo, domain.OccupancyPolicy{}, zap.NewNop())
	slots, err := uc.Execute(ctx, domain.AvailabilityInput{Date: mustDate(t, "2026-10-19"), ServiceID: cut.ID})
	if err != nil || len(slots) != 0 {
		t.Errorf("expected silent empty list, got %v (%v)", slots, err)
	}
}
