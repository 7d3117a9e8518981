package booking

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestCheckCancellationWindow(t *testing.T) {
	utc := time.UTC
	date := models.NewDate(2026, 10, 20)

	tests := []struct {
		name    string
		now     time.Time
		wantErr bool
	}{
		{"two days before", time.Date(2026, 10, 18, 12, 0, 0, 0, utc), false},
		{"exactly 24h before midnight", time.Date(2026, 10, 19, 0, 0, 0, 0, utc), false},
		{"day before, afternoon", time.Date(2026, 10, 19, 15, 0, 0, 0, utc), true},
		{"same day", time.Date(2026, 10, 20, 8, 0, 0, 0, utc), true},
		{"past appointment", time.Date(2026, 10, 25, 8, 0, 0, 0, utc), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCancellationWindow(date, utc, tt.now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %t", err, tt.wantErr)
			}
			if err != nil && httperr.KindOf(err) != httperr.KindValidation {
				t.Errorf("expected validation kind, got %v", err)
			}
		})
	}
}

func TestCheckCancellationWindow_ShopTimezone(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*3600)
	date := models.NewDate(2026, 10, 20)

	// 2026-10-19 02:00 UTC is 2026-10-18 23:00 in the shop, 25h before 00:00 on the 20th.
	now := time.Date(2026, 10, 19, 2, 0, 0, 0, time.UTC)
	if err := CheckCancellationWindow(date, saoPaulo, now); err != nil {
		t.Errorf("expected allowed, got %v", err)
	}
	if err := CheckCancellationWindow(date, time.UTC, now); err == nil {
		t.Error("in UTC the same instant is only 22h before")
	}
}
