package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type recordedEvents struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordedEvents) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordedEvents) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Action
	}
	return out
}

// seededRepo holds the default week (Sun closed, Mon-Fri 09-18, Sat 09-17)
// and two services: a 30 minute cut and a 45 minute combo.
func seededRepo(t *testing.T) (*repository.BookingMemoryRepository, *models.Service, *models.Service) {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewBookingMemoryRepository()

	days := []models.DayAvailability{{DayOfWeek: 0, StartTime: "00:00", EndTime: "00:00", IsOpen: false}}
	for d := 1; d <= 5; d++ {
		days = append(days, models.DayAvailability{DayOfWeek: d, StartTime: "09:00", EndTime: "18:00", IsOpen: true})
	}
	days = append(days, models.DayAvailability{DayOfWeek: 6, StartTime: "09:00", EndTime: "17:00", IsOpen: true})
	if err := repo.ReplaceAvailability(ctx, days); err != nil {
		t.Fatal(err)
	}

	cut := &models.Service{Name: "Basic Haircut", DurationMinutes: 30}
	combo := &models.Service{Name: "Haircut + Beard", DurationMinutes: 45}
	if err := repo.CreateService(ctx, cut); err != nil {
		t.Fatal(err)
	}
	if err := repo.CreateService(ctx, combo); err != nil {
		t.Fatal(err)
	}

	return repo, cut, combo
}

func fixedNow(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func insertBooking(t *testing.T, repo domain.BookingStore, b models.Booking) *models.Booking {
	t.Helper()
	if err := repo.CreateBooking(context.Background(), &b); err != nil {
		t.Fatal(err)
	}
	return &b
}

func uintPtr(v uint) *uint { return &v }
