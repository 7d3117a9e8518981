package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestMemory_CreateBooking_EnforcesActiveSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingMemoryRepository()
	date := models.NewDate(2026, 11, 2)

	first := &models.Booking{ServiceID: 1, AppointmentDate: date, AppointmentTime: "10:00"}
	if err := repo.CreateBooking(ctx, first); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if first.Status != string(domain.StatusPending) {
		t.Errorf("expected pending, got %s", first.Status)
	}

	dup := &models.Booking{ServiceID: 1, AppointmentDate: date, AppointmentTime: "10:00"}
	if err := repo.CreateBooking(ctx, dup); !errors.Is(err, domain.ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	first.Status = string(domain.StatusCancelled)
	if err := repo.UpdateBooking(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := repo.CreateBooking(ctx, dup); err != nil {
		t.Fatalf("cancelled booking must release the slot: %v", err)
	}

	all, _ := repo.ListBookingsByDate(ctx, date)
	if len(all) != 2 {
		t.Errorf("expected 2 bookings on date, got %d", len(all))
	}
}

func TestMemory_UpsertUser_KeepsRole(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingMemoryRepository()

	u, err := repo.UpsertUser(ctx, &models.User{OpenID: "abc", Name: "Ana"})
	if err != nil {
		t.Fatal(err)
	}
	if u.Role != models.RoleUser {
		t.Errorf("expected default role user, got %s", u.Role)
	}

	if err := repo.SetUserRole(ctx, "abc", models.RoleAdmin); err != nil {
		t.Fatal(err)
	}

	again, err := repo.UpsertUser(ctx, &models.User{OpenID: "abc", Name: "Ana Maria"})
	if err != nil {
		t.Fatal(err)
	}
	if again.ID != u.ID || again.Role != models.RoleAdmin || again.Name != "Ana Maria" {
		t.Errorf("unexpected merged user %+v", again)
	}
}

func TestMemory_ClientBookingsAndOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingMemoryRepository()

	svc := &models.Service{Name: "Cut"}
	_ = repo.CreateService(ctx, svc)

	owner := uint(7)
	other := uint(8)
	mk := func(client *uint, d int, hm string) {
		b := &models.Booking{ClientID: client, ServiceID: svc.ID, AppointmentDate: models.NewDate(2026, time.October, d), AppointmentTime: hm}
		if err := repo.CreateBooking(ctx, b); err != nil {
			t.Fatal(err)
		}
	}
	mk(&owner, 1, "09:00")
	mk(&owner, 25, "11:00")
	mk(&owner, 25, "09:30")
	mk(&other, 26, "09:00")
	mk(nil, 27, "09:00")

	mine, _ := repo.ListClientBookingsFrom(ctx, owner, models.NewDate(2026, 10, 18))
	if len(mine) != 2 {
		t.Fatalf("expected 2 upcoming bookings, got %d", len(mine))
	}
	if mine[0].AppointmentTime != "09:30" || mine[0].Service.Name != "Cut" {
		t.Errorf("unexpected first booking %+v", mine[0])
	}

	all, _ := repo.ListAllBookings(ctx)
	if len(all) != 5 || all[0].AppointmentDate.String() != "2026-10-27" {
		t.Errorf("expected date descending, got first %s", all[0].AppointmentDate)
	}
}

func TestMemory_ReviewUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingMemoryRepository()

	if err := repo.CreateReview(ctx, &models.Review{BookingID: 1, ClientID: 1, Rating: 5}); err != nil {
		t.Fatal(err)
	}
	if err := repo.CreateReview(ctx, &models.Review{BookingID: 1, ClientID: 1, Rating: 4}); !errors.Is(err, domain.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestMemory_AuditPagination(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingMemoryRepository()

	for i := 0; i < 5; i++ {
		_ = repo.CreateAuditLog(ctx, &models.AuditLog{Action: "booking_created", Entity: "booking"})
	}
	_ = repo.CreateAuditLog(ctx, &models.AuditLog{Action: "booking_cancelled", Entity: "booking"})

	logs, total, err := repo.ListAuditLogs(ctx, domain.AuditFilter{Action: "booking_created", Limit: 2, Offset: 1})
	if err != nil {
		t.Fatal(err)
	}
	if total != 5 || len(logs) != 2 {
		t.Errorf("total=%d len=%d", total, len(logs))
	}
}
