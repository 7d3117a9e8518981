package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type fakeNotifier struct {
	sent []uint
	fail map[uint]bool
}

func (n *fakeNotifier) SendReminder(_ context.Context, b models.Booking) error {
	if n.fail[b.ID] {
		return errors.New("smtp down")
	}
	n.sent = append(n.sent, b.ID)
	return nil
}

func TestSendReminders(t *testing.T) {
	ctx := context.Background()
	repo, cut, _ := seededRepo(t)
	tomorrow := mustDate(t, "2026-10-19")

	due := insertBooking(t, repo, models.Booking{ServiceID: cut.ID, AppointmentDate: tomorrow, AppointmentTime: "09:00", Status: "confirmed"})
	failing := insertBooking(t, repo, models.Booking{ServiceID: cut.ID, AppointmentDate: tomorrow, AppointmentTime: "10:00", Status: "confirmed"})
	insertBooking(t, repo, models.Booking{ServiceID: cut.ID, AppointmentDate: tomorrow, AppointmentTime: "11:00", Status: "pending"})
	insertBooking(t, repo, models.Booking{ServiceID: cut.ID, AppointmentDate: mustDate(t, "2026-10-20"), AppointmentTime: "09:00", Status: "confirmed"})

	n := &fakeNotifier{fail: map[uint]bool{failing.ID: true}}
	uc := NewSendReminders(repo, n, audit.Nop{}, time.UTC, zap.NewNop())
	uc.now = fixedNow(time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC))

	sent, err := uc.Execute(ctx)
	if err == nil {
		t.Error("expected the failed delivery to be reported")
	}
	if sent != 1 || len(n.sent) != 1 || n.sent[0] != due.ID {
		t.Fatalf("expected only booking %d reminded, got %v", due.ID, n.sent)
	}

	n.fail = nil
	sent, err = uc.Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if sent != 1 || n.sent[1] != failing.ID {
		t.Errorf("second run should only retry the failed booking, got %v", n.sent)
	}

	sent, _ = uc.Execute(ctx)
	if sent != 0 {
		t.Errorf("nothing left to remind, sent %d", sent)
	}
}
