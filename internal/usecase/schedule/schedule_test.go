package schedule

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
)

func TestReplaceAvailability(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingMemoryRepository()
	uc := NewReplaceAvailability(repo, audit.Nop{})

	days, err := uc.Execute(ctx, 1, []DayInput{
		{DayOfWeek: 6, StartTime: "09:00", EndTime: "17:00", IsOpen: true},
		{DayOfWeek: 0, StartTime: "00:00", EndTime: "00:00", IsOpen: false},
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsOpen: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 3 || days[0].DayOfWeek != 0 || days[2].DayOfWeek != 6 {
		t.Errorf("expected week ordered by day, got %+v", days)
	}

	bad := []struct {
		name string
		days []DayInput
		code string
	}{
		{"day out of range", []DayInput{{DayOfWeek: 7, StartTime: "09:00", EndTime: "10:00"}}, "invalid_day_of_week"},
		{"duplicate day", []DayInput{{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"}, {DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"}}, "duplicate_day_of_week"},
		{"bad time", []DayInput{{DayOfWeek: 1, StartTime: "9", EndTime: "10:00"}}, "invalid_time"},
		{"inverted window", []DayInput{{DayOfWeek: 1, StartTime: "18:00", EndTime: "09:00", IsOpen: true}}, "invalid_window"},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Execute(ctx, 1, tt.days); !httperr.IsBusiness(err, tt.code) {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
		})
	}

	kept, _ := NewGetAvailability(repo).Execute(ctx)
	if len(kept) != 3 {
		t.Errorf("rejected replace must keep the previous week, got %d days", len(kept))
	}
}

func TestBlockedDates(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingMemoryRepository()

	block := NewBlockDate(repo, audit.Nop{})
	bd, err := block.Execute(ctx, 1, "2026-12-25", "Christmas")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := block.Execute(ctx, 1, "2026-12-25", ""); httperr.KindOf(err) != httperr.KindConflict {
		t.Errorf("expected conflict, got %v", err)
	}
	if _, err := block.Execute(ctx, 1, "25/12/2026", ""); !httperr.IsBusiness(err, "invalid_date") {
		t.Errorf("expected invalid_date, got %v", err)
	}

	list, _ := NewListBlockedDates(repo).Execute(ctx)
	if len(list) != 1 || list[0].Reason != "Christmas" {
		t.Errorf("unexpected list %+v", list)
	}

	unblock := NewUnblockDate(repo, audit.Nop{})
	if err := unblock.Execute(ctx, 1, bd.ID); err != nil {
		t.Fatal(err)
	}
	if err := unblock.Execute(ctx, 1, bd.ID); httperr.KindOf(err) != httperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}
