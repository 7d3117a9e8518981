package booking

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	repo, cut, _ := seededRepo(t)

	owner := uint(1)
	stranger := uint(2)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	farAway := insertBooking(t, repo, models.Booking{
		ClientID: &owner, ServiceID: cut.ID, AppointmentDate: mustDate(t, "2026-10-21"), AppointmentTime: "10:00", Status: "pending",
	})
	tomorrow := insertBooking(t, repo, models.Booking{
		ClientID: &owner, ServiceID: cut.ID, AppointmentDate: mustDate(t, "2026-10-19"), AppointmentTime: "10:00", Status: "confirmed",
	})

	tests := []struct {
		name      string
		userID    uint
		bookingID uint
		kind      httperr.Kind
	}{
		{"missing booking", owner, 999, httperr.KindNotFound},
		{"not the owner", stranger, farAway.ID, httperr.KindForbidden},
		{"inside 24h window", owner, tomorrow.ID, httperr.KindValidation},
		{"owner with notice", owner, farAway.ID, ""},
		{"re-cancel is allowed", owner, farAway.ID, ""},
	}

	rec := &recordedEvents{}
	uc := NewCancelBooking(repo, rec, time.UTC)
	uc.now = fixedNow(now)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := uc.Execute(ctx, tt.userID, tt.bookingID)
			if tt.kind != "" {
				if httperr.KindOf(err) != tt.kind {
					t.Fatalf("expected %s, got %v", tt.kind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.Status != string(domain.StatusCancelled) {
				t.Errorf("expected cancelled, got %s", b.Status)
			}
		})
	}

	stored, _ := repo.GetBooking(ctx, tomorrow.ID)
	if stored.Status != "confirmed" {
		t.Errorf("rejected cancel must not change status, got %s", stored.Status)
	}
	if len(rec.actions()) != 2 {
		t.Errorf("expected two cancellation events, got %v", rec.actions())
	}
}

func TestCancelBooking_AnonymousBookingHasNoOwner(t *testing.T) {
	repo, cut, _ := seededRepo(t)
	b := insertBooking(t, repo, models.Booking{ServiceID: cut.ID, AppointmentDate: mustDate(t, "2026-12-01"), AppointmentTime: "10:00"})

	uc := NewCancelBooking(repo, audit.Nop{}, time.UTC)
	_, err := uc.Execute(context.Background(), 1, b.ID)
	if httperr.KindOf(err) != httperr.KindForbidden {
		t.Errorf("expected forbidden, got %v", err)
	}
}
